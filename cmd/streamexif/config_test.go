package main

import (
	"testing"

	"github.com/jrm-1535/streamexif/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogLevelFromEnv(t *testing.T) {
	t.Setenv("STREAMEXIF_LOG_LEVEL", "WARN")
	require.Equal(t, logger.WarnLevel, defaultLogLevel())
}

func TestDefaultLogLevelUnset(t *testing.T) {
	t.Setenv("STREAMEXIF_LOG_LEVEL", "")
	require.Equal(t, logger.InfoLevel, defaultLogLevel())
}

func TestDefaultStopOnErrorFromEnv(t *testing.T) {
	t.Setenv("STREAMEXIF_STOP_ON_ERROR", "true")
	require.True(t, defaultStopOnError())

	t.Setenv("STREAMEXIF_STOP_ON_ERROR", "")
	require.False(t, defaultStopOnError())
}

func TestNewDumpCommandRegistersFlags(t *testing.T) {
	cmd := newDumpCommand()
	require.NotNil(t, cmd.Flags().Lookup("log-level"))
	require.NotNil(t, cmd.Flags().Lookup("stop-on-error"))
	require.Equal(t, "dump <file.jpg>", cmd.Use)
}
