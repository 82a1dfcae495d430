package utils

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeDuration(t *testing.T) {
	d, err := parseProbeDuration(`{"streams":[],"format":{"filename":"a.mp4","duration":"12.480000"}}`)
	require.NoError(t, err)
	assert.InDelta(t, 12.48, d, 1e-9)

	_, err = parseProbeDuration(`{"format":{}}`)
	assert.Error(t, err)

	_, err = parseProbeDuration(`not json`)
	assert.Error(t, err)
}

func TestProbeMissingFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ffprobe test in short mode")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}
	_, err := ProbeDuration(filepath.Join(t.TempDir(), "missing.mp4"))
	assert.Error(t, err)
}

func TestCrypt(t *testing.T) {
	hashed, err := Crypt("secret1")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("secret1", hashed))
	assert.False(t, VerifyPassword("secret2", hashed))
}
