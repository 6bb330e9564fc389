package app_test

import (
	"testing"

	"stay_directory/internal/app"
	"stay_directory/internal/domain"
)

func revs(ratings ...int) []domain.Review {
	out := make([]domain.Review, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, domain.Review{Rating: r})
	}
	return out
}

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty list is zero", nil, 0},
		{"single review", []int{5}, 5.0},
		{"five then three averages to four", []int{5, 3}, 4.0},
		{"thirds round to one decimal", []int{5, 4, 4}, 4.3},
		{"two thirds round up", []int{5, 5, 4}, 4.7},
		{"all ones", []int{1, 1, 1, 1}, 1.0},
		{"half rounds away from zero", []int{4, 5}, 4.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := app.AverageRating(revs(tc.ratings...)); got != tc.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tc.ratings, got, tc.want)
			}
		})
	}
}
