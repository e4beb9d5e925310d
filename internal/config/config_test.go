package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, defaultConfig()); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  policy: packed
  encoding: cp1251
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	expected := defaultConfig()
	expected.Storage.Policy = PolicyPacked
	expected.Storage.Encoding = "cp1251"
	expected.Logging.Level = "debug"
	if diff := cmp.Diff(cfg, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INVINDEX_STORAGE_POLICY", PolicyCompressed)
	t.Setenv("INVINDEX_STORAGE_LEVEL", "9")
	t.Setenv("INVINDEX_MYSQL_ADDR", "db.internal")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, PolicyCompressed, cfg.Storage.Policy)
	require.Equal(t, 9, cfg.Storage.Level)
	require.Equal(t, "db.internal", cfg.MySQL.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [1, 2"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})
	t.Run("unknown policy", func(t *testing.T) {
		t.Setenv("INVINDEX_STORAGE_POLICY", "pickle")
		_, err := Load("")
		require.Error(t, err)
	})
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("INVINDEX_STORAGE_LEVEL", "max")
		_, err := Load("")
		require.Error(t, err)
	})
}

func TestOutOfRangeLevelIsNotRejected(t *testing.T) {
	t.Setenv("INVINDEX_STORAGE_LEVEL", "10")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Storage.Level)
}
