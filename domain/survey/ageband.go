package survey

import (
	"fmt"
	"math"
)

// AgeBand is the derived age bucket of a respondent.
type AgeBand string

const (
	AgeBandUnder20 AgeBand = "<20"
	AgeBand20to25  AgeBand = "20-25"
	AgeBand26to30  AgeBand = "26-30"
	AgeBand31to40  AgeBand = "31-40"
	AgeBand41Plus  AgeBand = "41+"
)

// AgeBands lists every band in ascending order.
var AgeBands = []AgeBand{AgeBandUnder20, AgeBand20to25, AgeBand26to30, AgeBand31to40, AgeBand41Plus}

// upper edges of the right-inclusive buckets; the last band is open-ended
var ageBandEdges = []float64{20, 25, 30, 40}

// DeriveAgeBand buckets an age into (0,20], (20,25], (25,30], (30,40], (40,+inf).
// Ages <= 0 and NaN are rejected.
func DeriveAgeBand(age float64) (AgeBand, error) {
	if math.IsNaN(age) || age <= 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidAge, age)
	}
	for i, edge := range ageBandEdges {
		if age <= edge {
			return AgeBands[i], nil
		}
	}
	return AgeBand41Plus, nil
}

func (b AgeBand) String() string {
	return string(b)
}
