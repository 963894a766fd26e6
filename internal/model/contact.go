package model

import "fmt"

// AbsentMarker is rendered in place of an unset optional field.
const AbsentMarker = "-"

// Contact is a name with an optional phone and birthday.
type Contact struct {
	name     Field
	phone    Field
	birthday Field
}

// NewContact builds a contact. Phone and birthday may be zero Fields.
func NewContact(name, phone, birthday Field) (*Contact, error) {
	c := &Contact{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := c.SetBirthday(birthday); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contact) Name() Field     { return c.name }
func (c *Contact) Phone() Field    { return c.phone }
func (c *Contact) Birthday() Field { return c.birthday }

// SetName replaces the name. The name is required.
func (c *Contact) SetName(f Field) error {
	if f.Kind() != KindName {
		return fmt.Errorf("%w: name slot requires a name field, got %s", ErrInvalidField, f.Kind())
	}
	c.name = f
	return nil
}

// SetPhone replaces the phone. A zero Field clears it.
func (c *Contact) SetPhone(f Field) error {
	if err := checkSlot(KindPhone, f); err != nil {
		return err
	}
	c.phone = f
	return nil
}

// SetBirthday replaces the birthday. A zero Field clears it.
func (c *Contact) SetBirthday(f Field) error {
	if err := checkSlot(KindBirthday, f); err != nil {
		return err
	}
	c.birthday = f
	return nil
}

func (c *Contact) String() string {
	return fmt.Sprintf("name: %s, phone: %s, birthday: %s",
		render(c.name), render(c.phone), render(c.birthday))
}

func checkSlot(want Kind, f Field) error {
	if f.IsZero() || f.Kind() == want {
		return nil
	}
	return fmt.Errorf("%w: %s slot requires a %s field, got %s", ErrInvalidField, want, want, f.Kind())
}

func render(f Field) string {
	if f.IsZero() {
		return AbsentMarker
	}
	return f.String()
}
