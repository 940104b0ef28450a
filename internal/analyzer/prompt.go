package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
)

// LoadTemplate reads the prompt template from disk and returns it with a
// short version hash, so stored analyses can be traced back to the exact
// prompt that produced them.
func LoadTemplate(path string) (template, versionHash string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	sum := sha256.Sum256(data)
	return string(data), hex.EncodeToString(sum[:])[:12], nil
}

// schemaDescription is a readable JSON example of the expected analysis
// output. It mirrors the schema in BuildAnalysisJSONSchema but is formatted
// for model consumption rather than formal validation.
const schemaDescription = `{
  "summary": "2-3 sentence plain-language overview of the filing.",

  "entities": [
    {
      "name": "Entity name as it appears in the text",
      "type": "company | facility | location | regulatory_reference",
      "role": "applicant | intervener | regulator | contractor | operator | landowner | consultant | other | null"
    }
  ],

  "relationships": [
    {
      "subject": "The entity performing the action",
      "predicate": "The action or relationship type",
      "object": "The entity or thing being acted upon",
      "context": "Optional additional context (or null)"
    }
  ],

  "classification": {
    "primary_type": "One of: Application, Order, Decision, Compliance Filing, Correspondence, Notice, Conditions Compliance, Financial Submission, Safety Report, Environmental Assessment",
    "tags": ["lowercase-hyphenated-topic-tags"],
    "confidence": 85,
    "justification": "1-2 sentence explanation of why this classification was chosen."
  },

  "key_facts": [
    "Short bullet-point string for each important fact (3-8 items)"
  ]
}`

// BuildPrompt fills the template's {placeholder} fields with filing data.
// Unknown metadata renders as "Unknown" rather than an empty string.
func BuildPrompt(template string, req Request) string {
	repl := strings.NewReplacer(
		"{filing_id}", req.FilingID,
		"{filing_date}", orUnknown(req.FilingDate),
		"{applicant}", orUnknown(req.Applicant),
		"{filing_type}", orUnknown(req.FilingType),
		"{document_text}", req.DocumentText,
		"{num_documents}", strconv.Itoa(req.NumDocuments),
		"{num_missing}", strconv.Itoa(req.NumMissing),
		"{json_schema_description}", schemaDescription,
	)
	return repl.Replace(template)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
