package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandString(t *testing.T) {
	s, err := MakeRandString(10)
	require.NoError(t, err)
	assert.Len(t, s, 10)

	for _, r := range s {
		assert.True(t, strings.ContainsRune(randAlphabet, r), "unexpected character %q", r)
	}
}

func TestMakeRandString_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := MakeRandString(10)
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup, "duplicate id %s", s)
		seen[s] = struct{}{}
	}
}

func TestMakeRandString_InvalidLength(t *testing.T) {
	_, err := MakeRandString(0)
	assert.Error(t, err)
}
