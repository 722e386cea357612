package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bhagyamlottery/agency-backend/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	files     = make(map[string]*lumberjack.Logger)
	loggersMu sync.Mutex

	current = defaultConfig()
)

func defaultConfig() config.LogConfig {
	return config.LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "stdout",
		File:       "logs/app.log",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
	}
}

// Init configures logging. Loggers created before Init are reconfigured.
func Init(cfg config.LogConfig) error {
	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	current = cfg
	for name, l := range loggers {
		configure(l, name)
	}
	return nil
}

// Close closes the log files opened by file output. Loggers keep working on stdout only
// until the next Init.
func Close() error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	var firstErr error
	for name := range files {
		if err := closeFile(name); err != nil && firstErr == nil {
			firstErr = err
		}
		loggers[name].SetOutput(os.Stdout)
	}
	return firstErr
}

// closeFile closes and forgets the rotating file of the named logger
func closeFile(name string) error {
	f, ok := files[name]
	if !ok {
		return nil
	}
	delete(files, name)
	return f.Close()
}

// GetLogger returns the named logger (app, http, ...), creating it on first use
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := logrus.New()
	configure(l, name)
	loggers[name] = l
	return l
}

func configure(l *logrus.Logger, name string) {
	level, err := logrus.ParseLevel(current.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if current.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	if err := closeFile(name); err != nil {
		fmt.Fprintf(os.Stderr, "logger: close %s log file: %v\n", name, err)
	}

	var writers []io.Writer
	if current.Output == "file" || current.Output == "both" {
		f := &lumberjack.Logger{
			Filename:   logFilePath(name),
			MaxSize:    current.MaxSizeMB,
			MaxBackups: current.MaxBackups,
			MaxAge:     current.MaxAgeDays,
			Compress:   true,
		}
		files[name] = f
		writers = append(writers, f)
	}
	if current.Output != "file" {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))
}

// logFilePath derives a per-logger file from the configured one: logs/app.log -> logs/http.log
func logFilePath(name string) string {
	dir := filepath.Dir(current.File)
	ext := filepath.Ext(current.File)
	if ext == "" {
		ext = ".log"
	}
	return filepath.Join(dir, name+ext)
}
