package suggest

import (
	"math/rand"
	"testing"

	"teamforge/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLogoStyle(t *testing.T) {
	t.Run("short names get a monogram", func(t *testing.T) {
		assert.Equal(t, models.LogoMonogram, LogoStyle("Shortname", ""))
	})

	t.Run("long names with a mascot get a badge", func(t *testing.T) {
		assert.Equal(t, models.LogoBadge, LogoStyle("LongTeamName", "wolves"))
	})

	t.Run("long names without a mascot get a wordmark", func(t *testing.T) {
		assert.Equal(t, models.LogoWordmark, LogoStyle("LongTeamNameNoMascot", ""))
	})

	t.Run("boundary at ten characters", func(t *testing.T) {
		assert.Equal(t, models.LogoMonogram, LogoStyle("TenLetters", "wolves"))
		assert.Equal(t, models.LogoBadge, LogoStyle("ElevenChars", "wolves"))
	})
}

func TestFontFamily(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Phoenix Squad", models.FontClassic},
		{"Maximum Velocity", models.FontBlock},
		{"Thunder Squad", models.FontModern},
		{"the DRAGONS", models.FontClassic},       // case-insensitive
		{"Ultimate Kraken", models.FontClassic},   // creature wins over intensity
		{"supreme effort", models.FontBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FontFamily(tt.name))
		})
	}
}

func TestLogoText(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"AB", "AB"},
		{"Thunder Squad Elite", "TSE"},
		{"Supercalifragilisticexpialidocious", "SUPE"},
		{"Exactly12Chr", "Exactly12Chr"},
		{"North West East South Club", "NWES"}, // initials cap at four
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LogoText(tt.name))
		})
	}
}

func TestMascotGlyph(t *testing.T) {
	t.Run("palette wraps at twelve", func(t *testing.T) {
		assert.Equal(t, 12, PaletteSize())
		assert.Equal(t, MascotGlyph(0), MascotGlyph(12))
		assert.Equal(t, MascotGlyph(5), MascotGlyph(17))
	})

	t.Run("seeded selection is deterministic", func(t *testing.T) {
		for seed := 0; seed < 24; seed++ {
			assert.Equal(t, MascotGlyph(seed), MascotGlyph(seed))
		}
	})

	t.Run("distinct seeds below palette size give distinct glyphs", func(t *testing.T) {
		seen := make(map[string]bool)
		for seed := 0; seed < PaletteSize(); seed++ {
			seen[MascotGlyph(seed)] = true
		}
		assert.Len(t, seen, PaletteSize())
	})
}

func TestRandomMascotGlyph(t *testing.T) {
	t.Run("always returns a palette glyph", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		palette := make(map[string]bool)
		for seed := 0; seed < PaletteSize(); seed++ {
			palette[MascotGlyph(seed)] = true
		}
		for i := 0; i < 100; i++ {
			assert.True(t, palette[RandomMascotGlyph(rng)])
		}
	})

	t.Run("same source yields same sequence", func(t *testing.T) {
		a := rand.New(rand.NewSource(7))
		b := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			assert.Equal(t, RandomMascotGlyph(a), RandomMascotGlyph(b))
		}
	})
}
