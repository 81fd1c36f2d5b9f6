package models

import "math"

// RatingSummary aggregates the scores a user has received.
type RatingSummary struct {
	Sum   int64
	Count int64
}

// Average is sum/count rounded to one decimal, 0 when unrated.
func (s RatingSummary) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return math.Round(float64(s.Sum)/float64(s.Count)*10) / 10
}
