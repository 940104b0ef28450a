package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeaningfulCharCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"plain words", "hello world", 10},
		{"markup only", "### --- ___ |||| ***", 0},
		{"mixed", "a-b|c #d", 4},
		{"whitespace ignored", "a\t b\nc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meaningfulCharCount(tt.text))
		})
	}
}

func TestGarbleRatio(t *testing.T) {
	assert.Equal(t, 0.0, garbleRatio(""))
	assert.Equal(t, 0.0, garbleRatio("clean text\nwith newlines\tand tabs"))

	// 1 replacement char out of 10 runes
	text := "abcdefghi�"
	assert.InDelta(t, 0.1, garbleRatio(text), 1e-9)

	// control codes count, \t \n \r do not
	assert.Equal(t, 0.0, garbleRatio("a\tb\nc\rd"))
	assert.Greater(t, garbleRatio("a\x00b"), 0.0)
	assert.Greater(t, garbleRatio("a\x0bb"), 0.0)
}

func TestHasRunawayTrigram(t *testing.T) {
	// A single trigram repeated far beyond the limit must be caught.
	assert.True(t, hasRunawayTrigram(strings.Repeat("ab", 1000)))

	// Normal prose stays under the ceiling.
	prose := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 100)
	assert.False(t, hasRunawayTrigram(prose))

	// Too short to have a trigram.
	assert.False(t, hasRunawayTrigram("ab"))

	// Repetition past the scan window is ignored.
	tail := strings.Repeat(" filler words here", 600) + strings.Repeat("ab", 1000)
	padded := strings.Repeat("unique prefix text goes here and varies 0123456789 ", 200)
	assert.False(t, hasRunawayTrigram(padded[:trigramWindowChars]+tail))
}

func TestHasRunawayTrigramBoundary(t *testing.T) {
	// "xq " repeated n times yields exactly n occurrences of the trigram
	// "xq " (the overlapping "q x" and " xq" windows each occur n-1 times).
	atLimit := strings.Repeat("xq ", trigramRepeatMax)
	assert.False(t, hasRunawayTrigram(atLimit))

	overLimit := strings.Repeat("xq ", trigramRepeatMax+1)
	assert.True(t, hasRunawayTrigram(overLimit))
}

func TestHasRunawayTrigramIgnoresWhitespaceRuns(t *testing.T) {
	// Layout-preserving extraction pads columns with space runs, so
	// all-whitespace trigrams show up thousands of times in good text.
	words := []string{"intake", "outlet", "valves", "casing", "flange", "gasket"}
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteString(words[i%len(words)])
		b.WriteString("     ")
	}
	text := b.String()
	assert.False(t, hasRunawayTrigram(text))

	ok, reason := checkTextQuality(text, 1, 10, 0.05)
	assert.True(t, ok, reason)
}

func TestCheckTextQualityContentFloor(t *testing.T) {
	const pages = 4
	const minPerPage = 50
	floor := pages * minPerPage // 200, above the absolute floor of 100

	// Build text with exactly `floor` meaningful chars: digits and letters
	// only, no markup, cycling to avoid runaway trigrams.
	exact := buildMeaningfulText(t, floor)
	ok, reason := checkTextQuality(exact, pages, minPerPage, 0.05)
	assert.True(t, ok, reason)

	// One meaningful char short of the floor fails.
	short := buildMeaningfulText(t, floor-1)
	ok, reason = checkTextQuality(short, pages, minPerPage, 0.05)
	assert.False(t, ok)
	assert.Contains(t, reason, "insufficient text")
}

func TestCheckTextQualityAbsoluteFloor(t *testing.T) {
	// With one page and a tiny per-page minimum, the absolute floor of 100
	// still applies.
	text := buildMeaningfulText(t, 99)
	ok, _ := checkTextQuality(text, 1, 10, 0.05)
	assert.False(t, ok)

	text = buildMeaningfulText(t, 100)
	ok, reason := checkTextQuality(text, 1, 10, 0.05)
	assert.True(t, ok, reason)
}

func TestCheckTextQualityGarble(t *testing.T) {
	base := buildMeaningfulText(t, 500)
	// Push the garble ratio over 5%.
	garbled := base + strings.Repeat("�", 50)
	ok, reason := checkTextQuality(garbled, 1, 10, 0.05)
	assert.False(t, ok)
	assert.Contains(t, reason, "garbled")

	// The OCR gate tolerates the same text at its looser ceiling.
	ok, reason = checkOCRQuality(garbled, 1, 10, 0.10)
	assert.True(t, ok, reason)
}

func TestCheckOCRQualityFloor(t *testing.T) {
	const pages = 2
	const minPerPage = 25
	floor := pages * minPerPage // 50, equal to the absolute OCR floor

	ok, _ := checkOCRQuality(buildMeaningfulText(t, floor), pages, minPerPage, 0.10)
	assert.True(t, ok)

	ok, reason := checkOCRQuality(buildMeaningfulText(t, floor-1), pages, minPerPage, 0.10)
	assert.False(t, ok)
	assert.Contains(t, reason, "insufficient ocr text")
}

func TestCheckOCRQualitySkipsTrigramCheck(t *testing.T) {
	// Repetitive OCR noise fails the text gate but not the OCR gate.
	noisy := strings.Repeat("ab", 1000)
	ok, _ := checkTextQuality(noisy, 1, 10, 0.05)
	assert.False(t, ok)
	ok, reason := checkOCRQuality(noisy, 1, 10, 0.10)
	assert.True(t, ok, reason)
}

// buildMeaningfulText returns text whose meaningful char count is exactly n,
// varied enough to stay clear of the trigram gate.
func buildMeaningfulText(t *testing.T, n int) string {
	t.Helper()
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789"
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[(i*7+i/9)%len(alphabet)])
		if i%8 == 7 {
			b.WriteByte(' ') // whitespace is not meaningful
		}
	}
	out := b.String()
	if got := meaningfulCharCount(out); got != n {
		t.Fatalf("buildMeaningfulText produced %d meaningful chars, want %d", got, n)
	}
	return out
}
