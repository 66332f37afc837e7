package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kilo/constants"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false, t.TempDir())
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	logFile := setupLogging(true, dir)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(dir, constants.LogDirName, logFileName)
	require.FileExists(t, logPath)

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, constants.LogDirName)
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	logFile := setupLogging(true, dir)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	logFile := setupLogging(true, t.TempDir())
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	output := log.Writer()
	assert.NotEqual(t, os.Stdout, output)
	assert.NotEqual(t, os.Stderr, output)
}
