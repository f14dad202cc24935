package calendar

import (
	"time"
)

// Partition is the position of a day within the 13-cycle year
type Partition struct {
	DayOfYear   int
	CycleNumber int
	DayOfCycle  int
	CycleName   string
	DayName     string
}

// Of partitions the calendar day of t.
//
// Days 1-364 are tiled by 13 cycles of 28 days. Day 365, and day 366 in
// leap years, stay in cycle 13 as its 29th and 30th day.
func Of(t time.Time) Partition {
	return fromDayOfYear(t.YearDay())
}

// FromValue resolves v to a timestamp and partitions it
func FromValue(v any) (Partition, error) {
	t, err := Resolve(v)
	if err != nil {
		return Partition{}, err
	}
	return Of(t), nil
}

func fromDayOfYear(doy int) Partition {
	var cycle, day int
	if doy <= RegularDays {
		cycle = (doy-1)/CycleLength + 1
		day = (doy-1)%CycleLength + 1
	} else {
		cycle = NumCycles
		day = doy - (NumCycles-1)*CycleLength
	}

	return Partition{
		DayOfYear:   doy,
		CycleNumber: cycle,
		DayOfCycle:  day,
		CycleName:   cycleNames[cycle-1],
		DayName:     dayNames[(day-1)%CycleLength],
	}
}

// IsOverflow reports whether the day lies past the 364 regular days
func (p Partition) IsOverflow() bool {
	return p.DayOfCycle > CycleLength
}

// Label joins the cycle and day names with divider
func (p Partition) Label(divider string) string {
	return p.CycleName + divider + p.DayName
}

// CycleSpan describes the calendar dates covered by one cycle
type CycleSpan struct {
	Number int
	Name   string
	First  time.Time
	Last   time.Time
}

// Days returns the number of days in the span
func (s CycleSpan) Days() int {
	return s.Last.YearDay() - s.First.YearDay() + 1
}

// Year returns the 13 cycles of year in loc. The last cycle absorbs the
// trailing one or two days of the year.
func Year(year int, loc *time.Location) []CycleSpan {
	if loc == nil {
		loc = time.Local
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)

	spans := make([]CycleSpan, 0, NumCycles)
	for i := 0; i < NumCycles; i++ {
		first := jan1.AddDate(0, 0, i*CycleLength)
		last := first.AddDate(0, 0, CycleLength-1)
		if i == NumCycles-1 {
			last = dec31
		}
		spans = append(spans, CycleSpan{
			Number: i + 1,
			Name:   cycleNames[i],
			First:  first,
			Last:   last,
		})
	}
	return spans
}
