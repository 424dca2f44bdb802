package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobclip/internal/relay"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	assert.True(t, s.AutoExtract)
	assert.True(t, s.ShowNotifications)
	assert.Equal(t, relay.DefaultBaseURL, s.APIBaseURL)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	want := Settings{
		AutoExtract:       false,
		ShowNotifications: true,
		APIBaseURL:        "https://relay.example.com",
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_RejectsInvalidURL(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	s := Default()
	s.APIBaseURL = "not a url"

	err := Save(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIBaseURL")
}

func TestSet_InvalidURLKeepsPriorValue(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	prior := Default()
	prior.APIBaseURL = "https://good.example.com"
	require.NoError(t, Save(prior))

	_, err := Set("api-url", "not a url")
	require.Error(t, err)

	// The file still holds the previous valid value
	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://good.example.com", got.APIBaseURL)
}

func TestSet_Toggles(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	s, err := Set("auto-extract", "off")
	require.NoError(t, err)
	assert.False(t, s.AutoExtract)

	s, err = Set("notifications", "false")
	require.NoError(t, err)
	assert.False(t, s.ShowNotifications)

	// Persisted across loads
	got, err := Load()
	require.NoError(t, err)
	assert.False(t, got.AutoExtract)
	assert.False(t, got.ShowNotifications)
}

func TestSet_UnknownKey(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	_, err := Set("bogus", "value")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSet_BadBooleanValue(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	_, err := Set("auto-extract", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boolean")
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{{{"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}

func TestPath_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "settings.json"), path)
}
