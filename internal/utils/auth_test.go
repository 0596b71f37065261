package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(32)
	require.NoError(t, err)
	b, err := GenerateRandomString(32)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]{32}$`), a)
	assert.NotEqual(t, a, b)

	_, err = GenerateRandomString(0)
	assert.Error(t, err)
}
