package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "string with spaces",
			input:    HashableString("hello world"),
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHashFuncs(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]HashFunc{"sha256": Sha256, "xxh3": XXH3, "xxhash64": XXHash64} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a1, err := fn(HashableString("alpha"))
			require.NoError(t, err)

			a2, err := fn(HashableString("alpha"))
			require.NoError(t, err)

			b, err := fn(HashableString("beta"))
			require.NoError(t, err)

			assert.Equal(t, a1, a2, "hash must be deterministic")
			assert.NotEqual(t, a1, b)
			assert.NotEmpty(t, a1)
		})
	}
}

func TestXXHashLengths(t *testing.T) {
	t.Parallel()

	x3, err := XXH3(HashableString("k"))
	require.NoError(t, err)
	assert.NotEmpty(t, x3)

	x64, err := XXHash64(HashableString("k"))
	require.NoError(t, err)
	assert.Len(t, x64, 16)
}

func TestHashableStrings(t *testing.T) {
	t.Parallel()

	ab, err := XXH3(HashableStrings{"ab", "c"})
	require.NoError(t, err)

	abc, err := XXH3(HashableStrings{"a", "bc"})
	require.NoError(t, err)

	assert.NotEqual(t, ab, abc, "element boundaries are part of the hash")

	assert.True(t, HashableStrings{"x", "y"}.Equals(HashableStrings{"x", "y"}))
	assert.False(t, HashableStrings{"x", "y"}.Equals(HashableStrings{"y", "x"}))
	assert.True(t, HashableStrings(nil).Equals(HashableStrings{}))
}

var errWrite = errors.New("write failed")

type failingHashable struct{}

func (failingHashable) UpdateHash(hash.Hash) error {
	return errWrite
}

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Sha256, XXH3, XXHash64} {
		out, err := fn(failingHashable{})
		require.ErrorIs(t, err, errWrite)
		assert.Empty(t, out)
	}
}

func TestHashableString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", HashableString("abc").String())
	assert.True(t, HashableString("abc").Equals("abc"))
	assert.False(t, HashableString("abc").Equals("abd"))
}
