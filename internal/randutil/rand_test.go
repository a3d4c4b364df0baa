package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for range 10 {
		assert.Equal(t, a.Int64(), b.Int64())
	}
}

func TestResolveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(7), ResolveSeed(7))
	assert.NotZero(t, ResolveSeed(0))
}

func TestDeriveSeeds(t *testing.T) {
	t.Parallel()

	seeds := DeriveSeeds(New(1), 4)
	assert.Len(t, seeds, 4)
	assert.Equal(t, seeds, DeriveSeeds(New(1), 4))
}
