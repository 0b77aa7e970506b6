package yamlsettings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s *appSettings) SetDefaults() bool {
	changed := false

	if s.Host == "" {
		s.Host = "localhost"
		changed = true
	}

	if s.Port == 0 {
		s.Port = 8080
		changed = true
	}

	return changed
}

type validatedSettings struct {
	Port int `yaml:"port"`
}

func (s *validatedSettings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func TestProvider_DecodesMergedSettings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	base := writeFile(t, tmpDir, "base.yaml", "host: example.com\nport: 9000\n")
	override := writeFile(t, tmpDir, "override.yaml", "port: 9001\n")

	source := newTestSource(t, Declaration{Files: []string{base, override}})
	provider := Provider(&appSettings{})

	result, err := provider(source)

	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Host)
	assert.Equal(t, 9001, result.Port)
}

func TestProvider_AppliesDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "settings.yaml", "host: example.com\n")

	source := newTestSource(t, Declaration{Files: path})
	provider := Provider(&appSettings{})

	result, err := provider(source)

	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Host)
	assert.Equal(t, 8080, result.Port, "default applied for missing port")
}

func TestProvider_ValidationFailure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "settings.yaml", "port: 70000\n")

	source := newTestSource(t, Declaration{Files: path})
	provider := Provider(&validatedSettings{})

	result, err := provider(source)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "port must be between")
}

func TestProvider_LoadErrorSurfaces(t *testing.T) {
	t.Parallel()

	source := newTestSource(t, Declaration{
		Files: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	provider := Provider(&appSettings{})

	result, err := provider(source)

	require.ErrorIs(t, err, ErrMissingRequired)
	assert.Nil(t, result)
}
