package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out))
	s := out.String()
	assert.Contains(t, s, "1. Inverse of the identity matrix:\n[1, 0, 0, 0]\n")
	assert.Contains(t, s, "equals identity: true")
	assert.Contains(t, s, "equal: true")
	assert.Contains(t, s, "I·t = [ 1 2 3 4 ]")
	assert.Contains(t, s, "modified·t = [ 9 2 3 4 ]")
}
