package bootstrap

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
)

// Seed is random seed material for the client application.
// It encodes as [head, [tail...]], the layout the client's random generator
// initialisation expects.
type Seed struct {
	Head uint32
	Tail []uint32
}

// NewSeed reads n 32-bit words from crypto/rand. n must be at least 1.
func NewSeed(n int) (Seed, error) {
	return NewSeedFrom(rand.Reader, n)
}

// NewSeedFrom reads n little-endian 32-bit words from r.
func NewSeedFrom(r io.Reader, n int) (Seed, error) {
	if n < 1 {
		return Seed{}, errors.Join(ErrSeed, errors.New("seed size must be positive"))
	}
	words := make([]uint32, n)
	if err := binary.Read(r, binary.LittleEndian, words); err != nil {
		return Seed{}, errors.Join(ErrSeed, err)
	}
	return Seed{Head: words[0], Tail: words[1:]}, nil
}

// Words returns the seed as a flat slice.
func (s Seed) Words() []uint32 {
	return append([]uint32{s.Head}, s.Tail...)
}

// MarshalJSON implements json.Marshaler.
func (s Seed) MarshalJSON() ([]byte, error) {
	tail := s.Tail
	if tail == nil {
		tail = []uint32{}
	}
	return json.Marshal([]any{s.Head, tail})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Seed) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}
	if len(parts) != 2 {
		return errors.Join(ErrInvalidSeed, errors.New("expected [head, [tail...]]"))
	}
	var out Seed
	if err := json.Unmarshal(parts[0], &out.Head); err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}
	if err := json.Unmarshal(parts[1], &out.Tail); err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}
	*s = out
	return nil
}
