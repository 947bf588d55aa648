package calendar

// dayIndex maps a day's base key to the appointment ids active on
// that day, in insertion order. It is derived state: rebuilt wholesale
// from a store scan after every mutation and swapped in atomically,
// never patched in place.
type dayIndex struct {
	days map[int][]int
}

func newDayIndex() *dayIndex {
	return &dayIndex{days: map[int][]int{}}
}

func (ix *dayIndex) add(dayKey, id int) {
	ix.days[dayKey] = append(ix.days[dayKey], id)
}

// ids returns the appointment ids for a day, or nil. Lookups never
// trigger a rebuild; keeping the index current is the mutation path's
// job.
func (ix *dayIndex) ids(dayKey int) []int {
	return ix.days[dayKey]
}

func (ix *dayIndex) size() int {
	return len(ix.days)
}
