package oid

import (
	"github.com/google/uuid"
)

// OID identifies a stored object (article, translation).
// Ex: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
type OID string

const Nil = OID("")

func (o OID) IsNil() bool {
	return string(o) == ""
}

// String returns the OID as a string.
func (o OID) String() string {
	return string(o)
}

/* Constructors */

func New() OID {
	return generator.New()
}
func NewFromBytes(b []byte) OID {
	return generator.NewFromBytes(b)
}

/* Parser */

// ParseOrNil parses an OID or returns Nil.
func ParseOrNil(s string) OID {
	id, err := uuid.Parse(s)
	if err != nil {
		return Nil
	}
	return OID(id.String())
}
