package labeling

import (
	"sort"
	"time"
)

// FrequencyLabel computes an approximate cadence label from message
// timestamps: mean gap of at most 2 days is daily, 10 weekly, 40 monthly,
// 150 quarterly, anything slower yearly.
func FrequencyLabel(dates []time.Time) string {
	if len(dates) < 2 {
		return "yearly"
	}

	ordered := append([]time.Time(nil), dates...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	var total float64
	for i := 1; i < len(ordered); i++ {
		total += ordered[i].Sub(ordered[i-1]).Seconds()
	}
	avg := total / float64(len(ordered)-1)

	const day = 24 * 3600
	switch {
	case avg <= 2*day:
		return "daily"
	case avg <= 10*day:
		return "weekly"
	case avg <= 40*day:
		return "monthly"
	case avg <= 150*day:
		return "quarterly"
	default:
		return "yearly"
	}
}

// UnreadRatioLabel buckets the unread ratio of a cluster. The boundaries
// are exact: only a fully unread cluster is "all" and only a fully read
// one is "none".
func UnreadRatioLabel(flags []bool) string {
	if len(flags) == 0 {
		return "none"
	}
	unread := 0
	for _, f := range flags {
		if f {
			unread++
		}
	}
	ratio := float64(unread) / float64(len(flags))

	switch {
	case ratio == 1.0:
		return "all"
	case ratio >= 0.9:
		return "almost all"
	case ratio == 0.0:
		return "none"
	case ratio <= 0.1:
		return "almost none"
	default:
		return "some"
	}
}
