// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import "strings"

// Sources spell musical facts a dozen ways ("B-flat major", "Bb",
// "b♭"). The normalizers below fold them into the dataset's notation:
// keys are note + optional accidental, with a "-" suffix for minor
// ("Bb", "F#", "Eb-"), and rhythms use the fake-book feel vocabulary
// ("Medium Swing", "Bossa Nova", "Jazz Waltz").

// enharmonics maps rarely written spellings to the ones the dataset
// prefers.
var enharmonics = map[string]string{
	"A#": "Bb",
	"D#": "Eb",
	"G#": "Ab",
	"Gb": "F#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

var accidentalSpellings = strings.NewReplacer(
	"♭", "b",
	"♯", "#",
	"-flat", "b",
	" flat", "b",
	"-sharp", "#",
	" sharp", "#",
)

// NormalizeKey parses a prose key description into dataset notation.
// It accepts forms like "Bb", "B-flat major", "c minor", "F♯ min" and
// "Eb-". The second return is false when the text is not a key.
func NormalizeKey(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "the key of ")
	s = strings.TrimPrefix(s, "key of ")
	s = accidentalSpellings.Replace(s)

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}

	note := fields[0]
	minor := false
	for _, qual := range fields[1:] {
		switch qual {
		case "major", "maj":
		case "minor", "min", "m":
			minor = true
		default:
			return "", false
		}
	}

	if strings.HasSuffix(note, "-") {
		minor = true
		note = strings.TrimSuffix(note, "-")
	}
	if len(note) > 1 && strings.HasSuffix(note, "m") {
		minor = true
		note = strings.TrimSuffix(note, "m")
	}

	if note == "" || note[0] < 'a' || note[0] > 'g' {
		return "", false
	}
	acc := note[1:]
	if acc != "" && acc != "b" && acc != "#" {
		return "", false
	}

	key := strings.ToUpper(note[:1]) + acc
	if canonical, ok := enharmonics[key]; ok {
		key = canonical
	}
	if minor {
		key += "-"
	}
	return key, true
}

// feelKeywords pairs style words with the rhythm feel they imply,
// checked in order so the more specific styles win over plain "swing".
var feelKeywords = []struct {
	word string
	feel string
}{
	{"bossa", "Bossa Nova"},
	{"waltz", "Jazz Waltz"},
	{"calypso", "Calypso"},
	{"afro", "Afro-Cuban"},
	{"latin", "Latin"},
	{"ballad", "Ballad"},
	{"bebop", "Up Swing"},
	{"up-tempo", "Up Swing"},
	{"uptempo", "Up Swing"},
	{"fast", "Up Swing"},
	{"medium", "Medium Swing"},
	{"swing", "Medium Swing"},
}

// InferRhythm scans prose for style words and returns the rhythm feel
// they imply. The second return is false when no style word appears.
func InferRhythm(text string) (string, bool) {
	s := strings.ToLower(text)
	for _, kw := range feelKeywords {
		if strings.Contains(s, kw.word) {
			return kw.feel, true
		}
	}
	return "", false
}

// disambiguators are page-title qualifiers sources append to song
// titles.
var disambiguators = []string{
	"(jazz standard)",
	"(song)",
	"(composition)",
	"(instrumental)",
	"(tune)",
}

// CleanTitle trims a raw title line into the form stored in the
// dataset: surrounding quotes and disambiguating suffixes removed,
// inner whitespace collapsed.
func CleanTitle(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.Trim(s, `"'`)
	lower := strings.ToLower(s)
	for _, suffix := range disambiguators {
		if strings.HasSuffix(lower, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	return s
}

// composerAliases folds the long-form names some sources use into the
// names the dataset stores.
var composerAliases = map[string]string{
	`edward kennedy "duke" ellington`: "Duke Ellington",
	`antônio carlos jobim`:            "Antonio Carlos Jobim",
	`thelonious sphere monk`:          "Thelonious Monk",
	`john birks "dizzy" gillespie`:    "Dizzy Gillespie",
	`edward "kid" ory`:                "Kid Ory",
	`william christopher handy`:       "W.C. Handy",
}

// CleanComposer normalizes a composer credit: whitespace collapsed,
// trailing punctuation dropped, known long-form names folded to their
// dataset spelling.
func CleanComposer(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.TrimRight(s, ".,;")
	if canonical, ok := composerAliases[strings.ToLower(s)]; ok {
		return canonical
	}
	return s
}
