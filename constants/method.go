package constants

// ExtractionMethod identifies which tier produced a document's text.
type ExtractionMethod string

const (
	MethodLayout ExtractionMethod = "pdftotext-layout" // tier 1: layout-aware machine text
	MethodTable  ExtractionMethod = "pdftotext-table"  // tier 2: table-focused fallback
	MethodOCR    ExtractionMethod = "tesseract-ocr"    // tier 3: rasterize + OCR
	MethodNone   ExtractionMethod = "failed"
)

// ExtractionMethods holds the allowed method strings for schema validation.
var ExtractionMethods = []string{
	string(MethodLayout),
	string(MethodTable),
	string(MethodOCR),
	string(MethodNone),
}
