package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:5678/", ListenURL("127.0.0.1", 5678))
	assert.Equal(t, "http://localhost:80/", ListenURL("localhost", 80))
	assert.Equal(t, "http://[::1]:8080/", ListenURL("::1", 8080))
}
