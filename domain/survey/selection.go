package survey

import "fmt"

// Bounds of the physical activity slider.
const (
	FAFMinBound = 0
	FAFMaxBound = 3
)

// Selection holds the current value of every filter control for one render.
type Selection struct {
	Genders       []string `json:"gender"`
	FAVC          []string `json:"favc"`
	CALC          []string `json:"calc"`
	FamilyHistory []string `json:"family_history"`
	FAFMin        int      `json:"faf"`
}

// Validate checks the slider value. Multi-select values need no check: values outside
// the data's domain simply match nothing.
func (s Selection) Validate() error {
	if s.FAFMin < FAFMinBound || s.FAFMin > FAFMaxBound {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidFAF, s.FAFMin, FAFMinBound, FAFMaxBound)
	}
	return nil
}

// IsDefault reports whether no control restricts the view.
func (s Selection) IsDefault() bool {
	return len(s.Genders) == 0 && len(s.FAVC) == 0 && len(s.CALC) == 0 &&
		len(s.FamilyHistory) == 0 && s.FAFMin == FAFMinBound
}
