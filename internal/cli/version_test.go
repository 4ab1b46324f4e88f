package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verifykit/stringver/internal/version"
)

func TestVersionCmdOutput(t *testing.T) {
	var buf bytes.Buffer
	originalOut := versionCmd.OutOrStdout()
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(originalOut) })

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, buf.String(), "stringver "+version.Version)
	assert.Contains(t, buf.String(), "commit:")
}

func TestVersionDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", version.Version)
	assert.True(t, version.IsDevBuild())
}
