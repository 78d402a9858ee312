package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapter_FieldsAndLevels(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	logger := NewLogrusAdapterFromLogger(base)

	logger.WithField(FieldComponent, "session").Info("expense added", F(FieldPayer, "Alice"), F(FieldRecords, 2))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "expense added", entry.Message)
	assert.Equal(t, "session", entry.Data[FieldComponent])
	assert.Equal(t, "Alice", entry.Data[FieldPayer])
	assert.Equal(t, 2, entry.Data[FieldRecords])
}

func TestLogrusAdapter_WithError(t *testing.T) {
	base, hook := test.NewNullLogger()
	logger := NewLogrusAdapterFromLogger(base)

	logger.WithError(errors.New("disk full")).Warn("save failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "disk full")
}

func TestNewLogrusAdapter_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogrusAdapter("chatty", "json").(*LogrusAdapter)
	assert.Equal(t, logrus.InfoLevel, logger.Logrus().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Logrus().Formatter)
}

func TestNewLogrusAdapter_TextFormat(t *testing.T) {
	logger := NewLogrusAdapter("debug", "text").(*LogrusAdapter)
	assert.Equal(t, logrus.DebugLevel, logger.Logrus().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Logrus().Formatter)
}
