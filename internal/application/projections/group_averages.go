package projections

import (
	"math"
	"sort"

	"fatiguelog/internal/domain/fatigue"
)

// GroupAverage is one (date, group) cell of the aggregated fatigue view.
type GroupAverage struct {
	Date    string
	Group   string
	Average float64
	Count   int
	Records []fatigue.Record
}

// ComputeGroupAverages groups fatigue records by (date, group) and averages
// their scores. The average is rounded to 2 decimal places. The result has
// exactly one row per distinct pair, sorted ascending by date then group;
// pairs with no records are never emitted.
func ComputeGroupAverages(records []fatigue.Record) []GroupAverage {
	type key struct{ date, group string }
	buckets := make(map[key][]fatigue.Record)
	for _, r := range records {
		k := key{r.Date, r.Group}
		buckets[k] = append(buckets[k], r)
	}

	out := make([]GroupAverage, 0, len(buckets))
	for k, recs := range buckets {
		sum := 0.0
		for _, r := range recs {
			sum += r.Score
		}
		out = append(out, GroupAverage{
			Date:    k.date,
			Group:   k.group,
			Average: round2(sum / float64(len(recs))),
			Count:   len(recs),
			Records: recs,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
