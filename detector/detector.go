// Package detector classifies free-form text into a short language code.
// Script-range checks run first because they are cheap and deterministic,
// then Devanagari text goes through marker-word disambiguation (statistical
// detectors tend to collapse Marathi into Hindi), and only then does the
// statistical detector get a say.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Marker words used to tell Hindi and Marathi apart, since both are written
// in Devanagari. Hand-curated, matched as substrings of the raw text.
var (
	hindiMarkers   = []string{"है", "हैं", "का", "की", "के", "में", "को", "से", "ने", "और", "या", "हो", "हे"}
	marathiMarkers = []string{"आहे", "आहेत", "च्या", "ला", "ने", "मध्ये", "आणि", "किंवा"}
)

// Detector classifies input text into a language code
type Detector struct {
	lingua lingua.LanguageDetector
}

// New builds a Detector over the closed language set the pipeline supports
func New() *Detector {
	languages := []lingua.Language{
		lingua.English, lingua.Spanish, lingua.Hindi, lingua.Marathi,
		lingua.French, lingua.German, lingua.Italian, lingua.Portuguese,
		lingua.Japanese, lingua.Korean, lingua.Chinese, lingua.Russian,
		lingua.Arabic, lingua.Bengali, lingua.Tamil, lingua.Telugu,
	}
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &Detector{lingua: d}
}

// Detect returns the language code for text. It never fails: empty or
// unclassifiable input degrades to "en".
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}

	switch {
	case containsRange(text, 0x0400, 0x04FF): // Cyrillic
		return "ru"
	case containsRange(text, 0x4E00, 0x9FFF): // CJK unified ideographs
		return "zh"
	case containsRange(text, 0xAC00, 0xD7AF): // Hangul syllables
		return "ko"
	case containsRange(text, 0x3040, 0x30FF): // Hiragana + Katakana
		return "ja"
	}

	if containsRange(text, 0x0900, 0x097F) { // Devanagari
		return d.detectDevanagari(text)
	}

	if code, ok := d.statistical(text); ok {
		return code
	}
	return "en"
}

// detectDevanagari resolves the Hindi/Marathi ambiguity. Marker words win
// over the statistical detector, and Devanagari never falls through to a
// non-Devanagari language: with no evidence either way, Hindi is assumed.
func (d *Detector) detectDevanagari(text string) string {
	hindiCount := countMarkers(text, hindiMarkers)
	marathiCount := countMarkers(text, marathiMarkers)

	if marathiCount > hindiCount && marathiCount > 0 {
		return "mr"
	}
	if hindiCount > 0 {
		return "hi"
	}

	if code, ok := d.statistical(text); ok && (code == "hi" || code == "mr") {
		return code
	}
	return "hi"
}

// statistical runs the lingua detector, reporting whether it could classify
// the text at all. Callers apply their own default on failure.
func (d *Detector) statistical(text string) (string, bool) {
	lang, ok := d.lingua.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

func countMarkers(text string, markers []string) int {
	count := 0
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			count++
		}
	}
	return count
}

func containsRange(text string, lo, hi rune) bool {
	for _, r := range text {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
