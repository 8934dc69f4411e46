package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blast-analytics-marketing/blast-developer-tools/logging"
)

func TestSetup(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "etl.log")

	logger, err := logging.Setup("orders", logFile, false)
	require.NoError(t, err)

	logger.Info("run started", "days_ago", 3)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "run started")
	require.Contains(t, out, "name=orders")
	require.Contains(t, out, "days_ago=3")
	require.Contains(t, out, "source=")
}

func TestSetup_Appends(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "etl.log")

	first, err := logging.Setup("orders", logFile, false)
	require.NoError(t, err)
	first.Info("first")

	second, err := logging.Setup("orders", logFile, false)
	require.NoError(t, err)
	second.Info("second")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "first")
	require.Contains(t, string(data), "second")
}

func TestHostname(t *testing.T) {
	host := logging.Hostname()
	require.NotEmpty(t, host)
	require.Equal(t, strings.ToLower(host), host)
	require.NotContains(t, host, ".local")
}

func TestUsername(t *testing.T) {
	require.NotEmpty(t, logging.Username())
}

func TestEnvironmentPredicates(t *testing.T) {
	require.NotEqual(t, logging.IsProduction(), logging.IsDevelopment())
}
