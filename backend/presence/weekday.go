package presence

// WeekdayBuckets holds one list of interval seconds per weekday, Monday first.
type WeekdayBuckets [7][]int

// Interval returns end minus start in seconds. The result is negative when
// end is earlier than start; midnight crossings are not considered.
func Interval(start, end Clock) int {
	return end.Seconds() - start.Seconds()
}

// GroupByWeekday buckets each day's presence interval by weekday.
func GroupByWeekday(days UserDays) WeekdayBuckets {
	var buckets WeekdayBuckets
	for i := range buckets {
		buckets[i] = []int{}
	}
	for date, p := range days {
		wd := weekdayIndex(date)
		buckets[wd] = append(buckets[wd], Interval(p.Start, p.End))
	}
	return buckets
}
