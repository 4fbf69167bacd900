// Copyright 2023 Mapforge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mapforge/chainmap/pkg/common/cmerr"
)

// LogConfig drives the global zap logger.  An empty Filename logs to
// stderr; otherwise a size-rotated file sink is used.
type LogConfig struct {
	// Level is a zapcore level name: debug, info, warn, error, fatal
	Level string `toml:"level"`
	// Format is console or json
	Format string `toml:"format"`
	// Filename of the rotated log file; empty means stderr only
	Filename string `toml:"filename"`
	// MaxSize is the maximum size in MB of a log file before rotation
	MaxSize int `toml:"max-size"`
	// MaxDays a rotated file is retained, 0 keeps all
	MaxDays int `toml:"max-days"`
	// MaxBackups of rotated files kept, 0 keeps all
	MaxBackups int `toml:"max-backups"`
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(cmerr.NewBadConfig("parse log level %s: %v", cfg.Level, err))
	}
	return level
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700")
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.ConsoleSeparator = " "
	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console", "":
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		panic(cmerr.NewInternalError("unsupported log format: %s", format))
	}
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	if stat, err := os.Stat(cfg.Filename); err == nil && stat.IsDir() {
		panic("log file can't be a directory")
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

var glog atomic.Value // *zap.Logger

// SetupChainmapLogger replaces the global logger according to cfg and
// returns it.
func SetupChainmapLogger(cfg *LogConfig) *zap.Logger {
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	logger := zap.New(core, cfg.getOptions()...)
	glog.Store(logger)
	return logger
}

// GetGlobalLogger returns the process-wide logger, setting up a default
// stderr console logger at info level on first use.
func GetGlobalLogger() *zap.Logger {
	if l := glog.Load(); l != nil {
		return l.(*zap.Logger)
	}
	return SetupChainmapLogger(&LogConfig{Level: "info", Format: "console"})
}
