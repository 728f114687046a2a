package game

import "strconv"

const (
	// Target is the best possible score, siete y media.
	Target = 7.5

	faceValue = 0.5
)

// CalculateScore adds card ranks, counting faces as half a point. When the
// total goes over the target every face is discounted at once, never just
// enough of them to stay under it.
func CalculateScore(cards []Card) float64 {
	score := 0.0
	faces := 0

	for _, card := range cards {
		if card.IsFace() {
			score += faceValue
			faces++
			continue
		}
		score += float64(card.rank)
	}

	if score == Target {
		return score
	}

	if faces > 0 && score > Target {
		score -= float64(faces) * faceValue
	}

	return score
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > Target
}

func IsNatural(cards []Card) bool {
	return CalculateScore(cards) == Target
}

// FormatScore prints a score with one decimal, "7.5" or "6.0".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
