package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerIsShared(t *testing.T) {
	assert.Same(t, GetLogger("app"), GetLogger("app"))
	assert.NotSame(t, GetLogger("app"), GetLogger("http"))
}

func TestInitWritesPerLoggerFiles(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Init(defaultConfig()) })

	cfg := defaultConfig()
	cfg.Level = "debug"
	cfg.Format = "json"
	cfg.Output = "file"
	cfg.File = filepath.Join(dir, "logs", "app.log")
	require.NoError(t, Init(cfg))

	log := GetLogger("importer")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	log.Info("hello")
	data, err := os.ReadFile(filepath.Join(dir, "logs", "importer.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestInitUnknownLevel(t *testing.T) {
	t.Cleanup(func() { _ = Init(defaultConfig()) })

	cfg := defaultConfig()
	cfg.Level = "chatty"
	require.NoError(t, Init(cfg))
	assert.Equal(t, logrus.InfoLevel, GetLogger("app").GetLevel())
}


func TestInitReplacesLogFiles(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Init(defaultConfig()) })

	cfg := defaultConfig()
	cfg.Output = "file"
	cfg.File = filepath.Join(dir, "app.log")
	require.NoError(t, Init(cfg))

	log := GetLogger("seed")
	log.Info("first")
	first := files["seed"]
	require.NotNil(t, first)

	require.NoError(t, Init(cfg))
	second := files["seed"]
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	log.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, "seed.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	t.Run("stdout output drops the files", func(t *testing.T) {
		require.NoError(t, Init(defaultConfig()))
		assert.Empty(t, files)
	})

	t.Run("close", func(t *testing.T) {
		require.NoError(t, Init(cfg))
		require.NoError(t, Close())
		assert.Empty(t, files)
	})
}
