package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/filingwatch/regdocs-monitor/constants"
)

// SidecarMeta is the frontmatter written alongside extracted text. Its
// presence on disk marks the document as already extracted.
type SidecarMeta struct {
	Source      string                     `yaml:"source"`
	Method      constants.ExtractionMethod `yaml:"method"`
	Pages       int                        `yaml:"pages"`
	Chars       int                        `yaml:"chars"`
	ExtractedAt time.Time                  `yaml:"extracted_at"`
}

// SidecarPath maps a PDF path to its extracted-text sidecar.
func SidecarPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".md"
}

// ShouldExtract reports whether the document still needs extraction. A
// non-empty sidecar means a previous run already succeeded.
func ShouldExtract(pdfPath string) bool {
	info, err := os.Stat(SidecarPath(pdfPath))
	if err != nil {
		return true
	}
	return info.Size() == 0
}

// WriteSidecar persists extracted text with a YAML frontmatter header.
func WriteSidecar(pdfPath string, res Result) error {
	meta := SidecarMeta{
		Source:      filepath.Base(pdfPath),
		Method:      res.Method,
		Pages:       res.PageCount,
		Chars:       res.CharCount,
		ExtractedAt: time.Now().UTC(),
	}
	header, err := yaml.Marshal(&meta)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(res.Text)
	if !strings.HasSuffix(res.Text, "\n") {
		b.WriteString("\n")
	}

	path := SidecarPath(pdfPath)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	return os.Rename(tmp, path)
}

// ReadSidecar loads a previously written sidecar, returning its frontmatter
// and body text.
func ReadSidecar(pdfPath string) (SidecarMeta, string, error) {
	var meta SidecarMeta
	data, err := os.ReadFile(SidecarPath(pdfPath))
	if err != nil {
		return meta, "", err
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		return meta, content, nil
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return meta, content, nil
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, "", err
	}
	body := strings.TrimPrefix(rest[end+len("\n---\n"):], "\n")
	return meta, body, nil
}
