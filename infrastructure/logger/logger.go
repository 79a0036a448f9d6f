package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type Options struct {
	// LogDir receives a JSON log file per run; empty disables file logging.
	LogDir    string
	LogPrefix string
	Level     string
	RunID     string
	// Console defaults to os.Stderr.
	Console io.Writer
}

type fileLogger struct {
	mu      sync.Mutex
	base    *logrus.Logger
	entry   *logrus.Entry
	logFile *os.File
}

func NewFileLogger(opts Options) (Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	base := logrus.New()
	base.SetOutput(console)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	l := &fileLogger{base: base}

	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory '%s': %w", opts.LogDir, err)
		}

		prefix := opts.LogPrefix
		if prefix == "" {
			prefix = "youtube_etl"
		}

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		logFilePath := filepath.Join(opts.LogDir, fmt.Sprintf("%s_%s.json", prefix, timestamp))

		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
		}

		l.logFile = file
		base.AddHook(&jsonFileHook{
			out:       file,
			formatter: &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
	}

	l.entry = logrus.NewEntry(base)
	if opts.RunID != "" {
		l.entry = l.entry.WithField("run_id", opts.RunID)
	}

	return l, nil
}

func (l *fileLogger) write(level logrus.Level, msg string, errIn error, skip int) {
	pc, filePath, _, ok := runtime.Caller(skip)

	shortFileName := "???"
	funcName := "???"
	if ok {
		shortFileName = filepath.Base(filePath)
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			funcName = parts[len(parts)-1]
		}
	}

	entry := l.entry.WithFields(logrus.Fields{
		"file":     shortFileName,
		"function": funcName,
	})
	if errIn != nil {
		entry = entry.WithError(errIn)
	}

	entry.Log(level, msg)
}

func (l *fileLogger) Info(msg string) {
	l.write(logrus.InfoLevel, msg, nil, 2)
}

func (l *fileLogger) Error(msg string, err error) {
	l.write(logrus.ErrorLevel, msg, err, 2)
}

func (l *fileLogger) Warning(msg string) {
	l.write(logrus.WarnLevel, msg, nil, 2)
}

// Close detaches the file hook; later entries only reach the console.
func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return
	}

	l.base.ReplaceHooks(make(logrus.LevelHooks))
	if err := l.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
	}
	l.logFile = nil
}

// jsonFileHook mirrors every entry as a JSON line into the run's log file.
type jsonFileHook struct {
	mu        sync.Mutex
	out       io.Writer
	formatter logrus.Formatter
}

func (h *jsonFileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *jsonFileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err = h.out.Write(line)
	return err
}
