package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		_, _ = w.Write([]byte(line))
	}
	return err
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

type Logger struct {
	*logrus.Entry
}

var e *logrus.Entry
var once sync.Once

// GetLogger returns the process logger. Init must be called first to get file
// output; without it the logger writes to stdout only.
func GetLogger() *Logger {
	once.Do(func() {
		e = newEntry(logrus.InfoLevel, os.Stdout)
	})
	return &Logger{e}
}

func (l *Logger) GetLoggerWithField(k string, v interface{}) *Logger {
	return &Logger{l.WithField(k, v)}
}

// Init sets up the process logger writing to stdout and dir/all.log.
func Init(dir string, debug bool) (*Logger, error) {
	var initErr error
	once.Do(func() {
		level := logrus.InfoLevel
		if debug {
			level = logrus.DebugLevel
		}

		err := os.MkdirAll(dir, 0770)
		if err != nil {
			initErr = err
			e = newEntry(level, os.Stdout)
			return
		}

		allFile, err := os.OpenFile(filepath.Join(dir, "all.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			initErr = err
			e = newEntry(level, os.Stdout)
			return
		}

		e = newEntry(level, allFile, os.Stdout)
	})
	return &Logger{e}, initErr
}

// New builds a standalone logger on the given writer, used by tests and tools.
func New(w io.Writer, debug bool) *Logger {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	return &Logger{newEntry(level, w)}
}

func newEntry(level logrus.Level, writers ...io.Writer) *logrus.Entry {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", path.Base(frame.Function)), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: true,
		FullTimestamp: true,
	}

	l.SetOutput(io.Discard)
	l.AddHook(&writerHook{
		Writer:    writers,
		LogLevels: logrus.AllLevels,
	})
	l.SetLevel(level)

	return logrus.NewEntry(l)
}
