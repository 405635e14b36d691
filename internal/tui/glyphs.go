package tui

import (
	"os"
	"strings"
	"sync"

	"jobfinder/internal/mapview"
)

// Terminal apps can't change the user's font, so UI affordances come in a
// Unicode and an ASCII flavor for terminals that render some glyphs poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set: explicit preference first, then
// JOBFINDER_TUI_GLYPHS. Unknown values are ignored.
func applyGlyphPreference(pref string) {
	v := strings.ToLower(strings.TrimSpace(pref))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(os.Getenv("JOBFINDER_TUI_GLYPHS")))
	}
	switch v {
	case "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphContacted() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "✔"
}

func glyphNotContacted() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "○"
}

func glyphSelected() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▶"
}

func glyphSeparator() string {
	if glyphs() == glyphSetASCII {
		return "|"
	}
	return "·"
}

func mapGlyphs() mapview.Glyphs {
	if glyphs() == glyphSetASCII {
		return mapview.ASCIIGlyphs
	}
	return mapview.UnicodeGlyphs
}
