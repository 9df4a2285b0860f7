package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	a.Equal("fallback", Getenv("test_getenv_key", "fallback"))

	_ = os.Setenv("test_getenv_key", "value")
	defer func() { _ = os.Unsetenv("test_getenv_key") }()

	a.Equal("value", Getenv("test_getenv_key", "fallback"))
}
