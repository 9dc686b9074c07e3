package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/helpie/internal/config"
	"github.com/jask/helpie/internal/metrics"
)

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	defer closeLog()
	logger.Info("dropped")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helpie.log")
	logger, closeLog, err := newLogger(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	closeLog()
	require.FileExists(t, path)
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}

func TestMetricsMux(t *testing.T) {
	rec := httptest.NewRecorder()
	metricsMux(metrics.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	metricsMux(metrics.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
