package calendar

import "fmt"

const (
	// NumCycles is the number of named cycles in a year
	NumCycles = 13
	// CycleLength is the number of days in a regular cycle
	CycleLength = 28
	// RegularDays is the number of days tiled by the regular cycles (13×28)
	RegularDays = NumCycles * CycleLength
)

// cycleNames is indexed by cycle number - 1
var cycleNames = [NumCycles]string{
	"Amber", "Bronze", "Coral", "Diamond", "Emerald", "Fuchsia", "Gold",
	"Indigo", "Khaki", "Onyx", "Ruby", "Silver", "Turquoise",
}

// dayNames is indexed by day-of-cycle position - 1
var dayNames = [CycleLength]string{
	"Alpaca", "Camel", "Cat", "Cow", "Dog", "Dolphin", "Duck",
	"Eagle", "Elephant", "Fox", "Frog", "Giraffe", "Horse", "Iguana",
	"Jaguar", "Lion", "Lizard", "Monkey", "Mouse", "Owl", "Panda",
	"Penguin", "Rabbit", "Snake", "Squirrel", "Tiger", "Turtle", "Whale",
}

// CycleNames returns a copy of the cycle name table in cycle order
func CycleNames() [NumCycles]string {
	return cycleNames
}

// DayNames returns a copy of the day name table in position order
func DayNames() [CycleLength]string {
	return dayNames
}

// CycleName returns the name of cycle n (1-based)
func CycleName(n int) (string, error) {
	if n < 1 || n > NumCycles {
		return "", fmt.Errorf("%w: cycle number %d out of range [1,%d]", ErrInvalidInput, n, NumCycles)
	}
	return cycleNames[n-1], nil
}

// DayName returns the day name for a day-of-cycle value (1-based).
// Overflow days past the end of the table wrap back to the start.
func DayName(day int) (string, error) {
	if day < 1 {
		return "", fmt.Errorf("%w: day of cycle %d must be positive", ErrInvalidInput, day)
	}
	return dayNames[(day-1)%CycleLength], nil
}

// IsCycleName reports whether name appears in the cycle table
func IsCycleName(name string) bool {
	for _, n := range cycleNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsDayName reports whether name appears in the day table
func IsDayName(name string) bool {
	for _, n := range dayNames {
		if n == name {
			return true
		}
	}
	return false
}
