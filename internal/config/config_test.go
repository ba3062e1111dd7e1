package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := def()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "seeds", cfg.SeedDir)
	assert.Equal(t, "", cfg.DBURL)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wooridb.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"9090","dbUrl":"postgres://x"}`), 0o644))

	cfg, err := loadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://x", cfg.DBURL)
	// untouched fields keep their defaults
	assert.Equal(t, "seeds", cfg.SeedDir)
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := loadJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestGetenvFallback(t *testing.T) {
	t.Setenv("WOORI_TEST_KEY", "")
	assert.Equal(t, "fb", getenv("WOORI_TEST_KEY", "fb"))

	t.Setenv("WOORI_TEST_KEY", "set")
	assert.Equal(t, "set", getenv("WOORI_TEST_KEY", "fb"))

	t.Setenv("WOORI_TEST_KEY", "   ")
	assert.Equal(t, "fb", getenv("WOORI_TEST_KEY", "fb"))
}
