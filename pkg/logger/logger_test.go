package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	Init()

	require.NoError(t, Configure("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)

	// Пустые значения ничего не меняют
	require.NoError(t, Configure("", ""))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	assert.Error(t, Configure("loud", ""))
	assert.Error(t, Configure("", "xml"))
}

func TestInit_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	Init()
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)

	// Мусор в окружении не ломает старт
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")
	Init()
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
}
