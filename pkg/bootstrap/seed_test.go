package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientenv/pkg/bootstrap"
)

func TestNewSeedFrom(t *testing.T) {
	t.Parallel()

	src := bytes.NewReader([]byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		0xff, 0xff, 0xff, 0xff,
	})
	seed, err := bootstrap.NewSeedFrom(src, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), seed.Head)
	assert.Equal(t, []uint32{2, 4294967295}, seed.Tail)
	assert.Equal(t, []uint32{1, 2, 4294967295}, seed.Words())
}

func TestNewSeedFrom_Errors(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.NewSeedFrom(bytes.NewReader([]byte{1, 2}), 1)
	assert.ErrorIs(t, err, bootstrap.ErrSeed)

	_, err = bootstrap.NewSeedFrom(bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, bootstrap.ErrSeed)
}

func TestNewSeed(t *testing.T) {
	t.Parallel()

	seed, err := bootstrap.NewSeed(5)
	require.NoError(t, err)
	assert.Len(t, seed.Tail, 4)
}

func TestSeed_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(bootstrap.Seed{Head: 7, Tail: []uint32{8, 9}})
	require.NoError(t, err)
	assert.JSONEq(t, `[7,[8,9]]`, string(data))

	data, err = json.Marshal(bootstrap.Seed{Head: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `[7,[]]`, string(data))

	var seed bootstrap.Seed
	require.NoError(t, json.Unmarshal([]byte(`[1,[2,3]]`), &seed))
	assert.Equal(t, bootstrap.Seed{Head: 1, Tail: []uint32{2, 3}}, seed)

	assert.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &seed), bootstrap.ErrInvalidSeed)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"head":1}`), &seed), bootstrap.ErrInvalidSeed)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[-1,[]]`), &seed), bootstrap.ErrInvalidSeed)
}
