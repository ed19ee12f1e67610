package testutil

import (
	"strconv"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/models"
)

// EntryBuilder provides fluent API for creating test entries.
type EntryBuilder struct {
	entry models.SleepEntry
}

func NewEntry() *EntryBuilder {
	return &EntryBuilder{
		entry: models.SleepEntry{
			ID:      "entry-1",
			Date:    time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC),
			Quality: models.QualityGreat,
			Hours:   8,
		},
	}
}

func (b *EntryBuilder) WithID(id string) *EntryBuilder {
	b.entry.ID = id
	return b
}

func (b *EntryBuilder) WithDate(d time.Time) *EntryBuilder {
	b.entry.Date = d
	return b
}

// OnDay sets the date to 07:00 UTC on the given day.
func (b *EntryBuilder) OnDay(year int, month time.Month, day int) *EntryBuilder {
	b.entry.Date = time.Date(year, month, day, 7, 0, 0, 0, time.UTC)
	return b
}

func (b *EntryBuilder) WithQuality(q models.Quality) *EntryBuilder {
	b.entry.Quality = q
	return b
}

func (b *EntryBuilder) WithHours(h float64) *EntryBuilder {
	b.entry.Hours = h
	return b
}

func (b *EntryBuilder) WithNote(note string) *EntryBuilder {
	b.entry.Note = note
	return b
}

func (b *EntryBuilder) Build() models.SleepEntry {
	return b.entry
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// FixedClock returns a clock that advances by step on every call,
// starting at start.
func FixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
