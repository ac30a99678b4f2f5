package service

import (
	"math"
	"strings"
)

// A rendered star row always has 10 slots for ratings in [0,10].
const starSlots = 10

const (
	glyphFull  = "★"
	glyphHalf  = "⯪"
	glyphEmpty = "☆"
)

// StarCounts maps a 0–10 rating to (full, half, empty) glyph counts.
// full = floor(rating); a half star appears when the fractional part is
// >= 0.5; empty fills the remainder of the 10 slots, floored at zero.
// Ratings above 10 keep their full-star count uncapped and render with no
// half or empty slots. Negative input reads as 0.
func StarCounts(rating float64) (full, half, empty int) {
	if rating < 0 {
		rating = 0
	}
	full = int(math.Floor(rating))
	if math.Mod(rating, 1) >= 0.5 {
		half = 1
	}
	empty = starSlots - full - half
	if empty < 0 {
		empty = 0
	}
	return full, half, empty
}

// RenderStars renders the fixed-width glyph row for a rating.
func RenderStars(rating float64) string {
	full, half, empty := StarCounts(rating)
	var b strings.Builder
	b.WriteString(strings.Repeat(glyphFull, full))
	b.WriteString(strings.Repeat(glyphHalf, half))
	b.WriteString(strings.Repeat(glyphEmpty, empty))
	return b.String()
}
