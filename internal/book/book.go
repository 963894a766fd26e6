// Package book holds the in-memory, ordered contact list.
package book

import (
	"slices"
	"strings"

	"github.com/rcliao/contacts/internal/model"
)

// ContactList is an ordered collection of contacts. Insertion order is kept
// and no two entries share a phone number.
type ContactList struct {
	contacts []*model.Contact
}

// New returns an empty list.
func New() *ContactList {
	return &ContactList{}
}

// Add appends c unless an equivalent entry is already present.
func (l *ContactList) Add(c *model.Contact) bool {
	if c == nil || l.indexOf(c) >= 0 {
		return false
	}
	l.contacts = append(l.contacts, c)
	return true
}

// Delete removes the first entry equivalent to c. Missing entries are ignored.
func (l *ContactList) Delete(c *model.Contact) bool {
	if c == nil {
		return false
	}
	i := l.indexOf(c)
	if i < 0 {
		return false
	}
	l.contacts = slices.Delete(l.contacts, i, i+1)
	return true
}

// ByName returns the first contact whose name equals name.
func (l *ContactList) ByName(name string) (*model.Contact, bool) {
	for _, c := range l.contacts {
		if c.Name().Value() == name {
			return c, true
		}
	}
	return nil, false
}

// Find returns the renderings that contain term, in insertion order.
func (l *ContactList) Find(term string) []string {
	out := []string{}
	for _, c := range l.contacts {
		if s := c.String(); strings.Contains(s, term) {
			out = append(out, s)
		}
	}
	return out
}

// List returns every rendering in insertion order.
func (l *ContactList) List() []string {
	out := make([]string, 0, len(l.contacts))
	for _, c := range l.contacts {
		out = append(out, c.String())
	}
	return out
}

// Len returns the number of contacts.
func (l *ContactList) Len() int { return len(l.contacts) }

func (l *ContactList) indexOf(c *model.Contact) int {
	// The record itself wins over an earlier entry that shares its phone.
	if i := slices.Index(l.contacts, c); i >= 0 {
		return i
	}
	for i, existing := range l.contacts {
		if sameEntry(existing, c) {
			return i
		}
	}
	return -1
}

// sameEntry matches the same record, or two records sharing a phone.
// Records without a phone only match themselves.
func sameEntry(a, b *model.Contact) bool {
	if a == b {
		return true
	}
	pa, pb := a.Phone(), b.Phone()
	return !pa.IsZero() && pa.Equal(pb)
}
