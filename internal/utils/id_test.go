package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDLength(t *testing.T) {
	for _, n := range []int{1, 10, 12, 32} {
		id, err := GenerateID(n)
		require.NoError(t, err)
		assert.Len(t, id, n)
	}
}

func TestGenerateIDCharset(t *testing.T) {
	id, err := GenerateID(256)
	require.NoError(t, err)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(idAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID(10)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
