package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/yamlsettings"
)

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"yamlsettings", "version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, yamlsettings.Version+"\n", stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"yamlsettings", "bogus"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "bogus")
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"yamlsettings"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
}

func TestRun_Check_MergesFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	basePath := filepath.Join(tmpDir, "base.yaml")
	overridePath := filepath.Join(tmpDir, "override.yaml")

	require.NoError(t, os.WriteFile(basePath, []byte("db:\n  host: localhost\n  name: app\n"), 0o600))
	require.NoError(t, os.WriteFile(overridePath, []byte("db:\n  host: prod\n"), 0o600))

	var stdout, stderr bytes.Buffer

	code := run(context.Background(),
		[]string{"yamlsettings", "check", basePath, overridePath},
		&stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "host: prod")
	assert.Contains(t, stdout.String(), "name: app")
}

func TestRun_Check_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(),
		[]string{"yamlsettings", "check", "/nonexistent/settings.yaml"},
		&stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "/nonexistent/settings.yaml")
}

func TestRun_Check_OptionalMissingFile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(),
		[]string{"yamlsettings", "check", "--optional", "/nonexistent/settings.yaml"},
		&stdout, &stderr)

	assert.Equal(t, 0, code)
}
