package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig(t *testing.T) *Config {
	return &Config{
		Level:      "info",
		Filename:   filepath.Join(t.TempDir(), "app.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}
}

func TestInitLogger(t *testing.T) {
	cfg := testConfig(t)
	assert.NoError(t, InitLogger(cfg))
	assert.NotNil(t, Log)

	Log.Info("logger initialized")
	Sync()
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = "loud"
	assert.Error(t, InitLogger(cfg))
}

func TestLogWritesJSONToFile(t *testing.T) {
	cfg := testConfig(t)
	assert.NoError(t, InitLogger(cfg))

	Log.Info("hello from test")
	Sync()

	data, err := os.ReadFile(cfg.Filename)
	assert.NoError(t, err)

	var entry map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello from test", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	cfg := testConfig(t)
	cfg.Level = "warn"
	assert.NoError(t, InitLogger(cfg))

	Log.Info("should be filtered")
	Sync()

	data, _ := os.ReadFile(cfg.Filename)
	assert.Empty(t, data)
}

func TestSyncWithoutInit(t *testing.T) {
	saved := Log
	Log = nil
	defer func() { Log = saved }()

	// Must not panic.
	Sync()
}
