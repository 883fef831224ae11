package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptsTypicalToken(t *testing.T) {
	id, err := Parse("k3x9PzWq-lm2abc45")

	require.NoError(t, err)
	assert.Equal(t, "k3x9PzWq-lm2abc45", id.String())
	assert.False(t, id.IsAnonymous())
}

func TestParse_RejectsEmpty(t *testing.T) {
	_, err := Parse("")

	assert.Equal(t, ErrInvalidID, err)
}

func TestParse_RejectsOverlongToken(t *testing.T) {
	_, err := Parse(strings.Repeat("a", MaxIDLength+1))

	assert.Equal(t, ErrInvalidID, err)
}

func TestParse_AcceptsMaxLengthToken(t *testing.T) {
	_, err := Parse(strings.Repeat("a", MaxIDLength))

	assert.NoError(t, err)
}

func TestParse_RejectsControlAndNonASCII(t *testing.T) {
	for _, raw := range []string{"abc def", "abc\tdef", "abc\ndef", "abc\x00def", "abcé"} {
		_, err := Parse(raw)
		assert.Error(t, err, "token %q should be rejected", raw)
	}
}

func TestAnonymous(t *testing.T) {
	assert.True(t, Anonymous.IsAnonymous())
	assert.Equal(t, "", Anonymous.String())
}
