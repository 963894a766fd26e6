// Package model defines the contact value types.
package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidField is wrapped by every field validation failure.
var ErrInvalidField = errors.New("invalid field")

// Kind identifies a field variant.
type Kind int

const (
	KindName Kind = iota + 1
	KindPhone
	KindBirthday
)

// BirthdayLayout is the canonical birthday format.
const BirthdayLayout = "2006-01-02"

// birthdayInput also accepts single-digit month and day.
const birthdayInput = "2006-1-2"

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindBirthday:
		return "birthday"
	default:
		return "unknown"
	}
}

// Field is a self-validating scalar value. The zero Field is absent.
type Field struct {
	kind  Kind
	value string
}

// NewField validates v against the rules for kind.
func NewField(kind Kind, v any) (Field, error) {
	value, err := validate(kind, v)
	if err != nil {
		return Field{}, err
	}
	return Field{kind: kind, value: value}, nil
}

// NewName returns a Name field.
func NewName(v any) (Field, error) { return NewField(KindName, v) }

// NewPhone returns a Phone field.
func NewPhone(v any) (Field, error) { return NewField(KindPhone, v) }

// NewBirthday returns a Birthday field holding the canonical date.
func NewBirthday(v any) (Field, error) { return NewField(KindBirthday, v) }

// Kind returns the field variant, or 0 for an absent field.
func (f Field) Kind() Kind { return f.kind }

// Value returns the stored value.
func (f Field) Value() string { return f.value }

// IsZero reports whether the field is absent.
func (f Field) IsZero() bool { return f.kind == 0 }

// Set re-validates and replaces the value. On error the field is unchanged.
func (f *Field) Set(v any) error {
	if f.kind == 0 {
		return fmt.Errorf("%w: cannot assign to an absent field", ErrInvalidField)
	}
	value, err := validate(f.kind, v)
	if err != nil {
		return err
	}
	f.value = value
	return nil
}

// Equal reports whether both fields are the same variant with equal values.
func (f Field) Equal(other Field) bool {
	return f.kind == other.kind && f.value == other.value
}

func (f Field) String() string { return f.value }

func validate(kind Kind, v any) (string, error) {
	switch kind {
	case KindName:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: name must be a string", ErrInvalidField)
		}
		return s, nil

	case KindPhone:
		s, ok := v.(string)
		if !ok || !isDigits(s) {
			return "", fmt.Errorf("%w: phone must be a string of digits", ErrInvalidField)
		}
		return s, nil

	case KindBirthday:
		if t, ok := v.(time.Time); ok {
			return t.Format(BirthdayLayout), nil
		}
		t, err := time.Parse(birthdayInput, fmt.Sprint(v))
		if err != nil {
			return "", fmt.Errorf("%w: birthday must be a date in YYYY-MM-DD format", ErrInvalidField)
		}
		return t.Format(BirthdayLayout), nil
	}
	return "", fmt.Errorf("%w: unknown kind %d", ErrInvalidField, int(kind))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
