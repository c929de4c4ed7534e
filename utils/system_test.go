package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMemUsage(t *testing.T) {
	s := GetMemUsage()
	assert.True(t, strings.HasPrefix(s, "Alloc = "), s)
	assert.Contains(t, s, "NumGC")
}
