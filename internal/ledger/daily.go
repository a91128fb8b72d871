package ledger

import (
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/shopspring/decimal"
)

const (
	// SeriesDays is the length of the trailing daily series.
	SeriesDays = 7
	// ScaleFloor keeps the chart scale non-degenerate on a quiet week.
	ScaleFloor = 500.0
)

// DayBucket is the spending of one calendar day.
type DayBucket struct {
	Start   time.Time
	End     time.Time
	Label   string
	Amount  float64
	IsToday bool
}

// Contains reports whether t falls in the bucket's half-open interval.
func (b DayBucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// StartOfDay returns local midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Window returns the half-open interval covered by the daily series: from
// midnight six days before now up to the next midnight.
func Window(now time.Time) (start, end time.Time) {
	today := StartOfDay(now)
	return today.AddDate(0, 0, -(SeriesDays - 1)), today.AddDate(0, 0, 1)
}

// DailySeries buckets spending into the seven calendar days ending today,
// oldest first. Each bucket spans [midnight, next midnight) in now's
// location, so an expense stamped exactly at midnight counts toward the day
// that midnight starts. Bucket ends come from AddDate rather than adding 24
// hours, so a bucket spanning a DST change lasts 23 or 25 hours and the
// seven buckets always line up with calendar days.
func DailySeries(expenses []model.Expense, now time.Time) []DayBucket {
	loc := now.Location()
	today := StartOfDay(now)
	series := make([]DayBucket, 0, SeriesDays)

	for i := 0; i < SeriesDays; i++ {
		start := today.AddDate(0, 0, -(SeriesDays - 1 - i))
		bucket := DayBucket{
			Start: start,
			End:   start.AddDate(0, 0, 1),
			Label: start.Format("Mon"),
		}
		bucket.IsToday = bucket.Contains(now)
		bucket.Amount = sum(expenses, func(e model.Expense) bool {
			return bucket.Contains(time.UnixMilli(e.Timestamp).In(loc))
		}).InexactFloat64()
		series = append(series, bucket)
	}

	return series
}

// WeeklyTotal sums the buckets of a daily series.
func WeeklyTotal(series []DayBucket) float64 {
	total := decimal.Zero
	for _, b := range series {
		total = total.Add(decimal.NewFromFloat(b.Amount))
	}
	return total.InexactFloat64()
}

// MaxForScale is the largest daily amount, never below ScaleFloor. It only
// scales the bar chart.
func MaxForScale(series []DayBucket) float64 {
	highest := ScaleFloor
	for _, b := range series {
		highest = max(highest, b.Amount)
	}
	return highest
}

// HighestDay returns the bucket with the largest amount; ties go to the
// most recent day. ok is false for an empty series.
func HighestDay(series []DayBucket) (DayBucket, bool) {
	if len(series) == 0 {
		return DayBucket{}, false
	}
	best := series[0]
	for _, b := range series[1:] {
		if b.Amount >= best.Amount {
			best = b
		}
	}
	return best, true
}
