package extractor

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFInfo is what the pre-flight checks need to know about a file.
type PDFInfo struct {
	PageCount int
	Encrypted bool
}

// Inspector answers structural questions about a PDF before any tier runs.
type Inspector interface {
	Inspect(path string) (PDFInfo, error)
}

type pdfcpuInspector struct{}

// NewInspector returns the pdfcpu-backed Inspector.
func NewInspector() Inspector {
	return pdfcpuInspector{}
}

func (pdfcpuInspector) Inspect(path string) (PDFInfo, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		if isEncryptionError(err) {
			return PDFInfo{Encrypted: true}, nil
		}
		return PDFInfo{}, err
	}
	return PDFInfo{
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}, nil
}

func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypt")
}
