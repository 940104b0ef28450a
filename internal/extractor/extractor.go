package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/common"
)

// Result is the outcome of one extraction attempt. A failed attempt is a
// value, not an error: Err carries the final reason after every tier has
// been exhausted.
type Result struct {
	OK        bool
	Text      string
	Method    constants.ExtractionMethod
	PageCount int
	CharCount int
	Err       string
}

// Engine runs the tiered text-extraction cascade over a single PDF.
type Engine struct {
	cfg       common.ExtractionConfig
	runner    Runner
	inspector Inspector
	logger    *slog.Logger
}

func NewEngine(cfg common.ExtractionConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "eng"
	}
	if cfg.OCRDPI <= 0 {
		cfg.OCRDPI = 300
	}
	return &Engine{cfg: cfg, runner: newExecRunner(logger), inspector: NewInspector(), logger: logger}
}

// Extract tries each tier in order and returns the first output that clears
// its quality gate. Tiers run strictly in order: pdftotext -layout, then
// pdftotext -table, then rasterized OCR when the page count allows it.
func (e *Engine) Extract(ctx context.Context, path string) Result {
	info, err := e.inspector.Inspect(path)
	if err != nil {
		e.logger.Warn("cannot open pdf", "path", path, "error", err)
		return Result{Method: constants.MethodNone, Err: fmt.Sprintf("cannot open PDF: %v", err)}
	}
	if info.Encrypted {
		return Result{Method: constants.MethodNone, Err: "encrypted PDF"}
	}
	if e.cfg.MaxPagesForExtraction > 0 && info.PageCount > e.cfg.MaxPagesForExtraction {
		return Result{
			Method:    constants.MethodNone,
			PageCount: info.PageCount,
			Err:       fmt.Sprintf("too many pages: %d exceeds limit %d", info.PageCount, e.cfg.MaxPagesForExtraction),
		}
	}

	var reasons []string

	type textTier struct {
		mode   string
		method constants.ExtractionMethod
	}
	for _, tier := range []textTier{
		{"-layout", constants.MethodLayout},
		{"-table", constants.MethodTable},
	} {
		text, err := e.pdfToText(ctx, path, tier.mode)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", tier.method, err))
			continue
		}
		if ok, reason := checkTextQuality(text, info.PageCount, e.cfg.MinCharsPerPage, e.cfg.GarbleRatioThreshold); !ok {
			e.logger.Debug("tier rejected", "path", path, "method", tier.method, "reason", reason)
			reasons = append(reasons, fmt.Sprintf("%s: %s", tier.method, reason))
			continue
		}
		return Result{
			OK:        true,
			Text:      text,
			Method:    tier.method,
			PageCount: info.PageCount,
			CharCount: meaningfulCharCount(text),
		}
	}

	if e.cfg.MaxPagesForOCR > 0 && info.PageCount > e.cfg.MaxPagesForOCR {
		reasons = append(reasons, fmt.Sprintf("%s: skipped, %d pages exceeds ocr limit %d",
			constants.MethodOCR, info.PageCount, e.cfg.MaxPagesForOCR))
	} else {
		text, pages, err := e.pdfToOCR(ctx, path)
		switch {
		case err != nil:
			reasons = append(reasons, fmt.Sprintf("%s: %v", constants.MethodOCR, err))
		default:
			if ok, reason := checkOCRQuality(text, pages, e.cfg.MinCharsPerPageOCR, e.cfg.OCRGarbleRatioThreshold); !ok {
				e.logger.Debug("tier rejected", "path", path, "method", constants.MethodOCR, "reason", reason)
				reasons = append(reasons, fmt.Sprintf("%s: %s", constants.MethodOCR, reason))
			} else {
				return Result{
					OK:        true,
					Text:      text,
					Method:    constants.MethodOCR,
					PageCount: info.PageCount,
					CharCount: meaningfulCharCount(text),
				}
			}
		}
	}

	return Result{
		Method:    constants.MethodNone,
		PageCount: info.PageCount,
		Err:       "all extraction tiers failed: " + strings.Join(reasons, "; "),
	}
}

func (e *Engine) pdfToText(ctx context.Context, path, mode string) (string, error) {
	// pdftotext <mode> -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, mode, "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext %s failed: %v: %s", mode, err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func (e *Engine) pdfToOCR(ctx context.Context, path string) (string, int, error) {
	tmpDir, err := os.MkdirTemp("", "regdocs-ocr-*")
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove ocr temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.OCRDPI), "-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("pdftoppm failed: %v: %s", err, truncate(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no images")
	}

	var parts []string
	for _, img := range matches {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.OCRLanguage)
		if err != nil {
			return "", 0, fmt.Errorf("tesseract failed on %s: %v: %s", filepath.Base(img), err, truncate(string(errb), 512))
		}
		parts = append(parts, strings.TrimSpace(string(out)))
	}
	return strings.Join(parts, "\n\n---\n\n"), len(matches), nil
}
