package domain

import "math"

const (
	TrophyNone     string = "none"
	TrophyWooden   string = "wooden"
	TrophyBronze   string = "bronze"
	TrophySilver   string = "silver"
	TrophyGold     string = "gold"
	TrophyPlatinum string = "platinum"
	TrophyDiamond  string = "diamond"
)

// trophyThresholds is ordered from the highest tier down.
var trophyThresholds = []struct {
	level string
	min   int
}{
	{TrophyDiamond, 50},
	{TrophyPlatinum, 40},
	{TrophyGold, 30},
	{TrophySilver, 20},
	{TrophyBronze, 10},
	{TrophyWooden, 1},
}

// ClassifyTrophy maps a completed gig count to the highest tier it qualifies for.
func ClassifyTrophy(completedGigs int) string {
	for _, t := range trophyThresholds {
		if completedGigs >= t.min {
			return t.level
		}
	}
	return TrophyNone
}

// AggregateRatings computes the average (one decimal place) and count of ratings.
func AggregateRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return RatingSummary{
		AverageRating: math.Round(mean*10) / 10,
		TotalReviews:  len(ratings),
	}
}
