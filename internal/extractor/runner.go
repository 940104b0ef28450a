package extractor

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner executes an external extraction tool. Tests stub it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	logger *slog.Logger
}

func newExecRunner(logger *slog.Logger) execRunner {
	return execRunner{logger: logger}
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		r.logger.Warn("extraction tool failed",
			"tool", name,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 2048))
	} else {
		r.logger.Debug("extraction tool ok",
			"tool", name,
			"elapsed_ms", elapsed.Milliseconds(),
			"stdout_bytes", out.Len())
	}
	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
