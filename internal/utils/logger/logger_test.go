package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := New("test").Error("failed to load %s", cause, "thing")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load thing: boom", err.Error())
}
