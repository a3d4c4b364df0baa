// Package sessionid generates sortable session identifiers: a UUIDv7
// encoded as 26 lowercase base32 characters.
package sessionid

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, which sorts in the same order as the bytes it encodes
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// RandSource supplies random bits. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Generator creates session IDs stamped with its clock's time
type Generator struct {
	clock quartz.Clock
	rng   RandSource // nil uses crypto/rand
}

// New creates a generator. A nil rng draws from crypto/rand.
func New(clock quartz.Clock, rng RandSource) *Generator {
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	var id [16]byte

	// 48-bit millisecond timestamp, big endian
	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], ms<<16)

	if g.rng != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rng.Uint64()))
		binary.BigEndian.PutUint64(id[8:16], g.rng.Uint64())
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("sessionid: failed to read random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encoding.EncodeToString(id[:])
}

// Validate checks that id has the length and alphabet of a generated ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
