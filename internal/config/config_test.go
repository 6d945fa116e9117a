package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/monopole/scriptrunner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: 1
path: ./touchstone
args: [test.db]
count: 50
seed: 600
timeout: 10s
save_dir: runs
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "./touchstone", cfg.Path)
	assert.Equal(t, []string{"test.db"}, cfg.Args)
	assert.Equal(t, 50, cfg.Count())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(600), *cfg.Seed)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "runs", cfg.SaveDir)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: 1\n"), true)
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, cfg.Count())
	assert.Equal(t, DefaultTimeout, cfg.Timeout())
	assert.Nil(t, cfg.Seed)
	assert.Empty(t, cfg.Path)
}

func TestLoad_SeedZeroIsNotUnset(t *testing.T) {
	cfg, err := Load(writeConfig(t, "seed: 0\n"), true)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(0), *cfg.Seed)
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = Load(path, true)
	if !assert.Error(t, err) {
		t.Fatal("expecting an error")
	}
	assert.Contains(t, err.Error(), "reading")
}

func TestLoad_Bad(t *testing.T) {
	testCases := map[string]struct {
		content string
		errMsg  string
	}{
		"notYaml": {
			content: "path: [unclosed\n",
			errMsg:  "parsing",
		},
		"badTimeout": {
			content: "timeout: soon\n",
			errMsg:  "bad timeout",
		},
		"negativeTimeout": {
			content: "timeout: -5s\n",
			errMsg:  "must be positive",
		},
		"negativeCount": {
			content: "count: -1\n",
			errMsg:  "negative",
		},
	}
	for n, tc := range testCases {
		t.Run(n, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content), true)
			if !assert.Error(t, err) {
				t.Fatal("expecting an error")
			}
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
