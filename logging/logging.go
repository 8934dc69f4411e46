// Package logging builds the structured logger shared by extract runs and
// reports basic facts about the host they run on.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Setup returns a logger writing to the given log file, creating parent
// directories and appending to an existing file. With stdout set the same
// records also go to the console. Every record carries the run name and its
// source location.
func Setup(name, logFile string, stdout bool) (*slog.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	var w io.Writer = f
	if stdout {
		w = io.MultiWriter(f, os.Stdout)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true})
	return slog.New(handler).With("name", name), nil
}

// Hostname returns the lowercased host name with any ".local" suffix
// stripped.
func Hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return strings.TrimSuffix(strings.ToLower(host), ".local")
}

// Username returns the current user's name, or "docker" when the host has no
// login session to report.
func Username() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "docker"
	}
	return u.Username
}

// IsProduction reports whether the host looks like a production instance,
// recognized by a case-insensitive "prod" substring in the hostname.
func IsProduction() bool {
	return strings.Contains(Hostname(), "prod")
}

// IsDevelopment is the complement of IsProduction.
func IsDevelopment() bool {
	return !IsProduction()
}
