package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения. Компоненты пишут через
// Log.WithFields(logrus.Fields{"component": ...}).
var Log *logrus.Logger

// Init создает логгер: stdout, текстовый формат, уровень info.
// LOG_LEVEL и LOG_FORMAT из окружения применяются сразу, ошибки в них игнорируются.
// Вызывается один раз в main и в TestMain.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(textFormatter())

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		Log.SetLevel(lvl)
	}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Configure применяет уровень и формат из конфига.
// Пустые значения не меняют текущую настройку.
func Configure(level, format string) error {
	if Log == nil {
		Init()
	}
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
		Log.SetLevel(lvl)
	}
	switch strings.ToLower(format) {
	case "":
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		Log.SetFormatter(textFormatter())
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{FullTimestamp: true, ForceColors: true}
}
