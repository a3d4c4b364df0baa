package sessionid

import (
	"testing"
	"time"

	rand "math/rand/v2"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := New(quartz.NewReal(), nil).Generate()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	a := New(clock, rand.New(rand.NewPCG(1, 2))).Generate()
	b := New(clock, rand.New(rand.NewPCG(1, 2))).Generate()
	assert.Equal(t, a, b)
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	gen := New(quartz.NewMock(t), nil)
	ids := make(map[string]bool)
	for range 100 {
		id := gen.Generate()
		assert.False(t, ids[id], "duplicate ID %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	gen := New(clock, rand.New(rand.NewPCG(3, 4)))

	var ids []string
	for range 10 {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
