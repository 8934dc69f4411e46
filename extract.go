package etl

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// extract runs the external extractor process and records the outcome.
// Standard out and standard error are captured, never inherited, and both
// buffers are fully written before Wait returns on every exit path. Only a
// clean exit (code 0) sets the extracted flag.
func (p *Processor) extract(ctx context.Context) {
	cmdline := p.Command()
	p.log().Info("extracting", "label", p.label, "command", strings.Join(cmdline, " "))

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, cmdline[0], cmdline[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	// Surface captured stdout for operator visibility regardless of outcome.
	if out := strings.TrimRight(stdout.String(), "\n"); out != "" {
		p.log().Info("extractor output", "label", p.label, "stdout", out)
	}

	if err == nil {
		p.extracted = true
		p.stats.incExtracted(1)
		return
	}

	p.stats.incFailures(1)
	p.log().Error("stage failed", "label", p.label, "stage", StageExtract,
		"error", p.classifyExtractErr(runCtx, err, stderr.String()))
}

// classifyExtractErr maps an exec failure onto the extraction error taxonomy:
// deadline -> TimeoutError, unlaunchable command -> LaunchError, non-zero
// exit -> ExitError. Anything else passes through unchanged.
func (p *Processor) classifyExtractErr(runCtx context.Context, err error, stderr string) error {
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Timeout: p.timeout}
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return &LaunchError{Path: p.interpreter, Err: err}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Code:   exitErr.ExitCode(),
			Stderr: strings.ReplaceAll(stderr, "\n", ""),
		}
	}
	return err
}
