// Package keys packs calendar dates into the integer record keys used
// across the day index and the record store.
//
// Keys for two consecutive days are numerically 100 apart, so a day's
// "base" key ends in 00 and the low two digits leave room for up to
// 100 appointments on the same day. The first unused key at or above
// the base key is handed out by the model's allocator; nothing else
// may mint sequence numbers.
package keys

import "time"

// SeqPerDay is the width of the per-day sequence band.
const SeqPerDay = 100

// DayKey returns the base key for a calendar date. Keys increase
// strictly with date order.
func DayKey(year int, month time.Month, day int) int {
	return (year-1900)*1_000_000 + int(month)*10_000 + day*100
}

// KeyFor returns the base key for the calendar date of t.
func KeyFor(t time.Time) int {
	return DayKey(t.Year(), t.Month(), t.Day())
}

// DayOnly strips the sequence number from an appointment key, leaving
// the base key of its day.
func DayOnly(id int) int {
	return id / SeqPerDay * SeqPerDay
}

// Sequence returns the per-day sequence number of an appointment key.
func Sequence(id int) int {
	return id % SeqPerDay
}

// BirthdayKey reduces a key to its month/day portion, discarding year
// and sequence, for matching annual occurrences regardless of year.
func BirthdayKey(id int) int {
	md := id % 1_000_000
	md -= md % SeqPerDay
	return md * 1_000_000
}

// DateOf recovers the calendar date encoded in a key. The sequence
// number is ignored.
func DateOf(key int) (year int, month time.Month, day int) {
	year = key/1_000_000 + 1900
	month = time.Month(key / 10_000 % 100)
	day = key / SeqPerDay % 100
	return year, month, day
}

// TimeOf returns midnight of the day encoded in a key.
func TimeOf(key int, loc *time.Location) time.Time {
	y, m, d := DateOf(key)
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
