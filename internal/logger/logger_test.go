package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.WarnLevel,
		Message: "[Service] provider slow",
		Data:    logrus.Fields{"status": 503},
	}

	out, err := (&SimpleFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[WARNING] [Service] provider slow status=503\n", string(out))
}

func TestSimpleFormatter_FieldOrder(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "request",
		Data: logrus.Fields{
			"request_id": "abc",
			"method":     "POST",
			"status":     200,
			"duration":   "1ms",
			"path":       "/sms",
		},
	}

	want := "[INFO] request duration=1ms method=POST path=/sms request_id=abc status=200\n"
	for range 20 {
		out, err := (&SimpleFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, want, string(out))
	}
}

func TestSetup(t *testing.T) {
	defer Logger.SetLevel(logrus.InfoLevel)

	require.NoError(t, Setup(Config{Level: "debug"}))
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	assert.Error(t, Setup(Config{Level: "loud"}))
}
