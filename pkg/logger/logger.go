package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. Nil until InitLogger runs; tests typically
// assign zap.NewNop().
var Log *zap.Logger

type Config struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// InitLogger builds the global logger: JSON entries to stdout and a rotating,
// buffered log file.
func InitLogger(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	fileSink := &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
	sink := zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), fileSink)

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	Log = zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(Log)
	return nil
}

// Sync flushes buffered entries. Safe to call before InitLogger.
func Sync() {
	if Log != nil {
		Log.Sync()
	}
}
