// Package logger — единый вывод логов fbw-host с префиксом и учётом quiet.
package logger

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Quiet при true отключает информационные сообщения (Info); Error выводится всегда.
var Quiet bool

var std = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Setup настраивает структурный журнал. Пустой dir — только stderr,
// иначе дополнительно fbw-host.log с ротацией.
func Setup(dir, level string) (io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "fbw-host.log"),
			MaxSize:    20, // МБ
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, lj)
		closer = lj
	}
	std = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	log.SetOutput(w)
	return closer, nil
}

// With — журнал подсистемы с атрибутом component.
func With(component string) *slog.Logger {
	return std.With("component", component)
}

// Info выводит сообщение с префиксом "fbw-host: ", если Quiet == false.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	std.Info("fbw-host: " + fmt.Sprintf(format, args...))
}

// Error выводит сообщение об ошибке с префиксом "fbw-host: " всегда.
func Error(format string, args ...interface{}) {
	std.Error("fbw-host: " + fmt.Sprintf(format, args...))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
