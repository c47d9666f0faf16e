// Package suggest derives default branding from team metadata. Every function
// is pure; randomness is injected so callers decide whether output is
// reproducible.
package suggest

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode/utf8"

	"teamforge/internal/models"
)

// Short names read well as monograms; longer names fall back to a badge when
// the team has a mascot to build one around.
const monogramMaxLen = 10

// logoTextMaxLen is the longest name rendered verbatim inside a logo.
const logoTextMaxLen = 12

// maxInitials caps the abbreviation built from multi-word names.
const maxInitials = 4

var (
	creatureRe  = regexp.MustCompile(`(?i)(phoenix|dragon|griffin|unicorn|sphinx|pegasus|kraken|titan|valkyrie|siren)`)
	intensityRe = regexp.MustCompile(`(?i)(maximum|ultimate|absolute|supreme|extreme|infinite|perfect|elite|prime|peak)`)
)

// mascotPalette is the fixed ordered set of glyphs offered as default mascots.
var mascotPalette = []string{
	"🦅", "🐺", "🦁", "🐉", "🦈", "🐻", "🐗", "🦂", "🐍", "🦬", "🐝", "🦖",
}

// LogoStyle picks a default logo style from the team name and mascot keyword.
func LogoStyle(name, mascotKeyword string) string {
	if utf8.RuneCountInString(name) <= monogramMaxLen {
		return models.LogoMonogram
	}
	if mascotKeyword != "" {
		return models.LogoBadge
	}
	return models.LogoWordmark
}

// FontFamily picks a default font family from the team name. Mythic-creature
// names take precedence over intensity words when a name matches both.
func FontFamily(name string) string {
	if creatureRe.MatchString(name) {
		return models.FontClassic
	}
	if intensityRe.MatchString(name) {
		return models.FontBlock
	}
	return models.FontModern
}

// LogoText derives the text rendered inside the logo. Short names pass
// through unchanged; multi-word names abbreviate to uppercase initials; a
// single overlong word is clipped to its first four characters.
func LogoText(name string) string {
	if utf8.RuneCountInString(name) <= logoTextMaxLen {
		return name
	}

	words := strings.Fields(name)
	if len(words) >= 2 {
		initials := make([]rune, 0, maxInitials)
		for _, w := range words {
			initials = append(initials, []rune(w)[0])
			if len(initials) == maxInitials {
				break
			}
		}
		return strings.ToUpper(string(initials))
	}

	r := []rune(name)
	return strings.ToUpper(string(r[:maxInitials]))
}

// MascotGlyph returns the palette entry for a seed. The palette wraps, so any
// two seeds that are congruent mod the palette size yield the same glyph.
func MascotGlyph(seed int) string {
	i := seed % len(mascotPalette)
	if i < 0 {
		i += len(mascotPalette)
	}
	return mascotPalette[i]
}

// RandomMascotGlyph picks a uniformly random glyph from the palette using the
// supplied source. Callers wanting reproducible output use MascotGlyph.
func RandomMascotGlyph(rng *rand.Rand) string {
	return mascotPalette[rng.Intn(len(mascotPalette))]
}

// PaletteSize is the number of mascot glyphs available.
func PaletteSize() int {
	return len(mascotPalette)
}
