package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/filingwatch/regdocs-monitor/internal/common"
)

// CommandRunner runs the analysis CLI with a prompt on stdin. Tests stub it.
type CommandRunner interface {
	RunWithInput(ctx context.Context, stdin, name string, args ...string) (stdout, stderr []byte, err error)
}

type execCommandRunner struct{}

func (execCommandRunner) RunWithInput(ctx context.Context, stdin, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

var codeFenceRE = regexp.MustCompile("(?s)^\\s*```(?:json)?\\s*\\n?(.*?)\\n?\\s*```\\s*$")

// stripCodeFences removes a markdown code fence wrapping JSON content.
// Without a fence the input comes back merely trimmed.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFenceRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// Service analyzes filing text through a single-turn CLI model call and
// validates the response before anything is persisted.
type Service struct {
	cfg    common.AnalysisConfig
	runner CommandRunner
	logger *slog.Logger
}

func NewService(cfg common.AnalysisConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Command == "" {
		cfg.Command = "claude"
	}
	if cfg.Model == "" {
		cfg.Model = "sonnet"
	}
	return &Service{cfg: cfg, runner: execCommandRunner{}, logger: logger}
}

// Analyze runs one filing through the model. Failures come back as tagged
// Result values; the error return is reserved for template loading.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	text := strings.TrimSpace(req.DocumentText)
	if len(text) < s.cfg.MinTextLength {
		s.logger.Warn("text too short for analysis",
			"filing_id", req.FilingID, "chars", len(text), "minimum", s.cfg.MinTextLength)
		return Failure(ErrInsufficientText,
			fmt.Sprintf("%d chars below minimum %d", len(text), s.cfg.MinTextLength)), nil
	}

	template, versionHash, err := LoadTemplate(s.cfg.TemplatePath)
	if err != nil {
		return Result{}, common.WrapError(err, "load prompt template")
	}
	prompt := BuildPrompt(template, req)

	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	s.logger.Info("invoking analysis cli",
		"filing_id", req.FilingID, "model", s.cfg.Model, "prompt_chars", len(prompt))
	start := time.Now()
	stdout, stderr, err := s.runner.RunWithInput(callCtx, prompt, s.cfg.Command,
		"-p",
		"--output-format", "json",
		"--model", s.cfg.Model,
		"--max-turns", "1",
	)
	elapsed := time.Since(start)

	res := Result{
		Model:          s.cfg.Model,
		PromptVersion:  versionHash,
		ProcessingTime: elapsed,
	}

	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			s.logger.Error("analysis cli timed out", "filing_id", req.FilingID, "timeout", s.cfg.Timeout.String())
			res.ErrorKind = ErrTimeout
			res.ErrorDetail = fmt.Sprintf("timed out after %s", s.cfg.Timeout)
			return res, nil
		}
		res.ErrorKind = ErrCLI
		res.ErrorDetail = fmt.Sprintf("%v: %s", err, strings.TrimSpace(string(stderr)))
		return res, nil
	}

	var envelope cliEnvelope
	if err := json.Unmarshal(stdout, &envelope); err != nil {
		res.ErrorKind = ErrInvalidCLIJSON
		res.ErrorDetail = err.Error()
		return res, nil
	}
	if envelope.IsError {
		res.ErrorKind = ErrCLI
		res.ErrorDetail = envelope.Result
		return res, nil
	}

	cleaned := stripCodeFences(envelope.Result)
	if err := ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), []byte(cleaned)); err != nil {
		s.logger.Error("analysis response failed validation",
			"filing_id", req.FilingID, "error", truncateStr(err.Error(), 200))
		res.ErrorKind = ErrValidation
		res.ErrorDetail = err.Error()
		res.RawResponse = envelope.Result
		return res, nil
	}

	s.logger.Info("analysis complete",
		"filing_id", req.FilingID,
		"elapsed_ms", elapsed.Milliseconds(),
		"model", s.cfg.Model,
		"input_tokens", envelope.Usage.InputTokens,
		"output_tokens", envelope.Usage.OutputTokens)

	res.Success = true
	res.AnalysisJSON = json.RawMessage(cleaned)
	res.RawResponse = envelope.Result
	res.CostUSD = envelope.TotalCostUSD
	res.InputTokens = envelope.Usage.InputTokens
	res.OutputTokens = envelope.Usage.OutputTokens
	res.Timestamp = time.Now().UTC()
	return res, nil
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
