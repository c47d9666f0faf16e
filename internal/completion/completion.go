// Package completion derives profile completion scores from a team snapshot.
package completion

import "teamforge/internal/models"

// Aggregate weighting. Brand carries the most weight because the builder flow
// starts there.
const (
	brandWeight    = 40
	identityWeight = 30
	rosterWeight   = 30
)

// Score computes the completion summary for a team with the given number of
// accepted roster members. Every score is clamped to [0,100].
func Score(team *models.Team, acceptedMembers int) models.CompletionSummary {
	brand := brandScore(&team.BrandKit)
	identity := identityScore(&team.Identity)
	roster := rosterScore(acceptedMembers)

	total := (brand*brandWeight + identity*identityWeight + roster*rosterWeight) / 100

	return models.CompletionSummary{
		Brand:    brand,
		Identity: identity,
		Roster:   roster,
		Total:    clamp(total),
	}
}

// brandScore awards equal shares for the five brand fields a finished kit
// carries: the two required ones plus font, logo style, and a mascot glyph.
func brandScore(kit *models.BrandKit) int {
	filled := 0
	if kit.PrimaryColor != "" {
		filled++
	}
	if kit.LogoText != "" {
		filled++
	}
	if kit.FontFamily != nil && *kit.FontFamily != "" {
		filled++
	}
	if kit.LogoStyle != nil && *kit.LogoStyle != "" {
		filled++
	}
	if kit.MascotGlyph != nil && *kit.MascotGlyph != "" {
		filled++
	}
	return clamp(filled * 100 / 5)
}

func identityScore(id *models.Identity) int {
	filled := 0
	if id.Tagline != "" {
		filled++
	}
	if id.MascotKeyword != "" {
		filled++
	}
	if id.Bio != "" {
		filled++
	}
	if id.Location != "" {
		filled++
	}
	return clamp(filled * 100 / 4)
}

// rosterScore saturates at five accepted members; beyond that the roster is
// considered complete for profile purposes.
func rosterScore(acceptedMembers int) int {
	if acceptedMembers < 0 {
		acceptedMembers = 0
	}
	return clamp(acceptedMembers * 100 / 5)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
