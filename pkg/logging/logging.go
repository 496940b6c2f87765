// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where log lines end up. File output is rotated, display
// output goes to Display (stderr when nil).
type Config struct {
	Directory    string
	LogLevel     zapcore.Level
	DisplayLevel zapcore.Level
	Display      io.Writer
	// rotation, in megabytes / files / days
	MaxSize  int
	MaxFiles int
	MaxAge   int
}

type Factory struct {
	config Config

	lock    sync.Mutex
	writers []*lumberjack.Logger
}

func NewFactory(config Config) *Factory {
	return &Factory{config: config}
}

// Make creates a logger writing to <Directory>/<name>.log and to the display.
func (f *Factory) Make(name string) (*zap.Logger, error) {
	if f.config.Directory == "" {
		return nil, fmt.Errorf("no log directory configured for %s", name)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(f.config.Directory, name+".log"),
		MaxSize:    f.config.MaxSize,
		MaxBackups: f.config.MaxFiles,
		MaxAge:     f.config.MaxAge,
	}
	f.lock.Lock()
	f.writers = append(f.writers, rotator)
	f.lock.Unlock()

	display := f.config.Display
	if display == nil {
		display = os.Stderr
	}

	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	displayConfig := zap.NewDevelopmentEncoderConfig()
	displayConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	displayEncoder := zapcore.NewConsoleEncoder(displayConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), f.config.LogLevel),
		zapcore.NewCore(displayEncoder, zapcore.Lock(zapcore.AddSync(display)), f.config.DisplayLevel),
	)
	return zap.New(core).Named(name), nil
}

// Close flushes and closes every file opened by the factory.
func (f *Factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()
	for _, w := range f.writers {
		_ = w.Close()
	}
	f.writers = nil
}

// ToLevel parses level names case-insensitively. "off" silences the logger.
func ToLevel(l string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "off":
		return zapcore.FatalLevel + 1, nil
	case "verbo", "trace":
		return zapcore.DebugLevel, nil
	case "warning":
		return zapcore.WarnLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(l)))
}
