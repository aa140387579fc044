package oid

import (
	"fmt"

	"github.com/google/uuid"
)

var generator Generator = NewUniqueGenerator()

// Namespace of name-based OIDs
var namespace = uuid.MustParse("8f4b1c2e-3d5a-4e6f-9a0b-1c2d3e4f5a6b")

/* Generator */

type Generator interface {
	New() OID
	NewFromBytes(b []byte) OID
}

// Reset restores the original unique OID generator.
// Useful in tests with a defer after overriding the default generator.
func Reset() {
	generator = NewUniqueGenerator()
}

/*
 * UniqueGenerator
 */

// UniqueGenerator is a production-grade Generator returning unique, random OIDs.
type UniqueGenerator struct{}

func NewUniqueGenerator() *UniqueGenerator {
	return &UniqueGenerator{}
}

// New generates a random (v4) OID.
func (g *UniqueGenerator) New() OID {
	return OID(uuid.New().String())
}

// NewFromBytes generates a name-based (v5) OID.
// The same bytes will generate the same OID.
func (g *UniqueGenerator) NewFromBytes(b []byte) OID {
	return OID(uuid.NewSHA1(namespace, b).String())
}

/*
 * SequenceGenerator
 */

// SequenceGenerator returns numbered OIDs in a predictable format.
// This generator is useful for tests when checking different objects.
type SequenceGenerator struct {
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{count: 0}
}

func (g *SequenceGenerator) New() OID {
	g.count++
	return OID(fmt.Sprintf("00000000-0000-0000-0000-%012d", g.count))
}

func (g *SequenceGenerator) NewFromBytes(b []byte) OID {
	return g.New()
}
