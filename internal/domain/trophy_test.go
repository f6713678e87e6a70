package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTrophy(t *testing.T) {
	tests := []struct {
		name          string
		completedGigs int
		expected      string
	}{
		{name: "No gigs", completedGigs: 0, expected: TrophyNone},
		{name: "First gig", completedGigs: 1, expected: TrophyWooden},
		{name: "Just below bronze", completedGigs: 9, expected: TrophyWooden},
		{name: "Bronze threshold", completedGigs: 10, expected: TrophyBronze},
		{name: "Silver threshold", completedGigs: 20, expected: TrophySilver},
		{name: "Between silver and gold", completedGigs: 29, expected: TrophySilver},
		{name: "Gold threshold", completedGigs: 30, expected: TrophyGold},
		{name: "Platinum threshold", completedGigs: 40, expected: TrophyPlatinum},
		{name: "Diamond threshold", completedGigs: 50, expected: TrophyDiamond},
		{name: "Far above diamond", completedGigs: 1000, expected: TrophyDiamond},
		{name: "Negative count", completedGigs: -1, expected: TrophyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTrophy(tt.completedGigs))
		})
	}
}

func TestAggregateRatings(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected RatingSummary
	}{
		{
			name:     "No reviews",
			ratings:  nil,
			expected: RatingSummary{AverageRating: 0, TotalReviews: 0},
		},
		{
			name:     "Single five star review",
			ratings:  []int{5},
			expected: RatingSummary{AverageRating: 5.0, TotalReviews: 1},
		},
		{
			name:     "Rounded to one decimal",
			ratings:  []int{5, 4, 4},
			expected: RatingSummary{AverageRating: 4.3, TotalReviews: 3},
		},
		{
			name:     "Rounds half up",
			ratings:  []int{5, 4, 4, 4},
			expected: RatingSummary{AverageRating: 4.3, TotalReviews: 4},
		},
		{
			name:     "Mixed ratings",
			ratings:  []int{1, 2, 3, 4, 5},
			expected: RatingSummary{AverageRating: 3.0, TotalReviews: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AggregateRatings(tt.ratings))
		})
	}
}
