package collect

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"already canonical", "Bb", "Bb", true},
		{"bare minor form", "Eb-", "Eb-", true},
		{"spelled out flat", "B-flat major", "Bb", true},
		{"flat as word", "b flat", "Bb", true},
		{"minor word", "C minor", "C-", true},
		{"lowercase natural", "c", "C", true},
		{"unicode sharp minor", "F♯ minor", "F#-", true},
		{"m suffix", "Ebm", "Eb-", true},
		{"min abbreviation", "g min", "G-", true},
		{"enharmonic sharp", "A# major", "Bb", true},
		{"enharmonic flat", "G♭", "F#", true},
		{"key of prefix", "the key of G minor", "G-", true},
		{"surrounding space", "  F  ", "F", true},
		{"not a note", "H major", "", false},
		{"empty", "", "", false},
		{"prose", "quartal harmony", "", false},
		{"trailing prose", "C minor blues", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeKey(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NormalizeKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInferRhythm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bossa", "a bossa nova classic from 1962", "Bossa Nova", true},
		{"waltz over swing", "a swinging jazz waltz", "Jazz Waltz", true},
		{"bebop", "an up-tempo bebop number", "Up Swing", true},
		{"ballad", "usually played as a ballad", "Ballad", true},
		{"medium swing", "a medium swing feel", "Medium Swing", true},
		{"plain swing", "hard swinging blues", "Medium Swing", true},
		{"case folded", "A BALLAD", "Ballad", true},
		{"no style words", "first recorded in 1959", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferRhythm(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("InferRhythm(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "So What", "So What"},
		{"extra whitespace", "  So   What ", "So What"},
		{"quoted", `"Misty"`, "Misty"},
		{"song qualifier", "Take Five (song)", "Take Five"},
		{"composition qualifier", "Naima (composition)", "Naima"},
		{"qualifier case folded", "ALL OF ME (SONG)", "ALL OF ME"},
		{"inner parens kept", "Gone with the Wind (What a Day)", "Gone with the Wind (What a Day)"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.in); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanComposer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Miles Davis", "Miles Davis"},
		{"trailing period", "Miles Davis.", "Miles Davis"},
		{"extra whitespace", "Duke  Ellington,", "Duke Ellington"},
		{"long form alias", `Edward Kennedy "Duke" Ellington`, "Duke Ellington"},
		{"accented alias", "Antônio Carlos Jobim", "Antonio Carlos Jobim"},
		{"unknown name kept", "Tadd Dameron", "Tadd Dameron"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanComposer(tt.in); got != tt.want {
				t.Errorf("CleanComposer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
