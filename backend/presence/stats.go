package presence

import "time"

// epoch is the fixed date carried by average start/end timestamps. Only
// the time of day is meaningful.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// Number is any numeric type Mean can average.
type Number interface {
	~int | ~int64 | ~float64
}

// Mean returns the arithmetic mean of items, or 0 for an empty slice.
func Mean[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, v := range items {
		sum += float64(v)
	}
	return sum / float64(len(items))
}

// SumPerWeekday totals each weekday bucket.
func SumPerWeekday(buckets WeekdayBuckets) [7]int {
	var sums [7]int
	for i, intervals := range buckets {
		for _, v := range intervals {
			sums[i] += v
		}
	}
	return sums
}

// DailyAverage is the mean check-in and check-out time for one weekday.
type DailyAverage struct {
	Weekday string
	Start   time.Time
	End     time.Time
}

// AverageStartEnd averages start and end times per weekday. Weekdays whose
// averaged start equals the averaged end, including weekdays without any
// data, are left out. Results are ordered Monday first.
func AverageStartEnd(days UserDays) []DailyAverage {
	var starts, ends, counts [7]int
	for date, p := range days {
		wd := weekdayIndex(date)
		starts[wd] += p.Start.Seconds()
		ends[wd] += p.End.Seconds()
		counts[wd]++
	}

	result := make([]DailyAverage, 0, len(Weekdays))
	for wd, name := range Weekdays {
		start, end := epoch, epoch
		if counts[wd] > 0 {
			start = onEpoch(ClockFromSeconds(starts[wd] / counts[wd]))
			end = onEpoch(ClockFromSeconds(ends[wd] / counts[wd]))
		}
		if start.Equal(end) {
			continue
		}
		result = append(result, DailyAverage{Weekday: name, Start: start, End: end})
	}
	return result
}

func onEpoch(c Clock) time.Time {
	return time.Date(epoch.Year(), epoch.Month(), epoch.Day(), c.Hour, c.Minute, c.Second, 0, time.UTC)
}
