package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_ValidLevel(t *testing.T) {
	err := Initialize("debug")
	assert.NoError(t, err)
	assert.NotNil(t, Log)
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize("not-a-level")
	assert.Error(t, err)
}
