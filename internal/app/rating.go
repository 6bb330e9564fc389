package app

import (
	"math"

	"stay_directory/internal/domain"
)

// AverageRating recomputes the derived rating for a review list: 0 for
// an empty list, else the mean rounded to one decimal place. Callers
// persist the result; the stored rating must never drift from this.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
