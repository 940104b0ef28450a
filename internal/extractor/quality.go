package extractor

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// Absolute content floors, independent of page count.
	textFloorChars = 100
	ocrFloorChars  = 50

	// Trigram repetition scan covers only the head of the text.
	trigramWindowChars = 10000
	trigramRepeatMax   = 200
)

// MeaningfulCharCount counts characters that carry content, ignoring
// whitespace and the markup characters pdftotext tends to emit for rules
// and table borders. It is the count persisted with every extraction.
func MeaningfulCharCount(text string) int {
	return meaningfulCharCount(text)
}

func meaningfulCharCount(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
		case r == '#' || r == '|' || r == '*' || r == '_' || r == '-':
		default:
			n++
		}
	}
	return n
}

// garbleRatio is the fraction of characters that indicate a corrupted
// decode: replacement characters and control codes other than \t, \n, \r.
func garbleRatio(text string) float64 {
	if text == "" {
		return 0
	}
	total, garbled := 0, 0
	for _, r := range text {
		total++
		if isGarbleRune(r) {
			garbled++
		}
	}
	return float64(garbled) / float64(total)
}

func isGarbleRune(r rune) bool {
	switch {
	case r == '�':
		return true
	case r <= 0x08:
		return true
	case r == 0x0b || r == 0x0c:
		return true
	case r >= 0x0e && r <= 0x1f:
		return true
	}
	return false
}

// hasRunawayTrigram reports whether any 3-character sequence repeats more
// than trigramRepeatMax times in the first trigramWindowChars characters.
// Dense repetition at that scale means the page decoded to filler, not prose.
// All-whitespace trigrams are exempt: column gaps in layout output make them
// ubiquitous in perfectly good text.
func hasRunawayTrigram(text string) bool {
	runes := []rune(text)
	if len(runes) > trigramWindowChars {
		runes = runes[:trigramWindowChars]
	}
	if len(runes) < 3 {
		return false
	}
	counts := make(map[string]int)
	for i := 0; i+3 <= len(runes); i++ {
		key := string(runes[i : i+3])
		if strings.TrimSpace(key) == "" {
			continue
		}
		counts[key]++
		if counts[key] > trigramRepeatMax {
			return true
		}
	}
	return false
}

// checkTextQuality gates pdftotext output: a page-scaled content floor,
// a garble ceiling, and the runaway-trigram check.
func checkTextQuality(text string, pages, minCharsPerPage int, garbleMax float64) (bool, string) {
	floor := textFloorChars
	if scaled := pages * minCharsPerPage; scaled > floor {
		floor = scaled
	}
	meaningful := meaningfulCharCount(text)
	if meaningful < floor {
		return false, fmt.Sprintf("insufficient text: %d meaningful chars, floor %d", meaningful, floor)
	}
	if ratio := garbleRatio(text); ratio > garbleMax {
		return false, fmt.Sprintf("garbled text: ratio %.3f exceeds %.3f", ratio, garbleMax)
	}
	if hasRunawayTrigram(text) {
		return false, "repetitive text: runaway trigram in leading window"
	}
	return true, ""
}

// checkOCRQuality gates tesseract output. OCR noise makes the trigram check
// meaningless, so only the floor and a looser garble ceiling apply.
func checkOCRQuality(text string, pages, minCharsPerPage int, garbleMax float64) (bool, string) {
	floor := ocrFloorChars
	if scaled := pages * minCharsPerPage; scaled > floor {
		floor = scaled
	}
	meaningful := meaningfulCharCount(text)
	if meaningful < floor {
		return false, fmt.Sprintf("insufficient ocr text: %d meaningful chars, floor %d", meaningful, floor)
	}
	if ratio := garbleRatio(text); ratio > garbleMax {
		return false, fmt.Sprintf("garbled ocr text: ratio %.3f exceeds %.3f", ratio, garbleMax)
	}
	return true, ""
}
