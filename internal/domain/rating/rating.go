// Package rating aggregates moderated rating scores.
package rating

import (
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/util"
)

// Summary is the public aggregate of a pharmacy's approved ratings.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Aggregate averages the approved ratings, rounded to one decimal. Unapproved
// ratings are ignored. An empty input yields the zero Summary.
func Aggregate(ratings []*entity.Rating) Summary {
	var sum, count int
	for _, r := range ratings {
		if r == nil || !r.Approved {
			continue
		}
		sum += r.Score
		count++
	}

	if count == 0 {
		return Summary{}
	}

	return Summary{
		Average: util.RoundTo(float64(sum)/float64(count), 1),
		Count:   count,
	}
}
