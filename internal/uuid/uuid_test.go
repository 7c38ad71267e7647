package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	g := NewGoogleUUIDGenerator()
	a, b := g.New(), g.New()

	assert.True(t, Valid(a))
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator(t *testing.T) {
	g := &SequenceGenerator{Prefix: "mon"}

	assert.Equal(t, "mon-1", g.New())
	assert.Equal(t, "mon-2", g.New())
	assert.False(t, Valid("mon-3"))
}
