package survey

// Controls describes the domain of every sidebar widget, derived from the data.
type Controls struct {
	Genders              []string `json:"gender"`
	FAVC                 []string `json:"favc"`
	CALC                 []string `json:"calc"`
	FamilyHistory        []string `json:"family_history"`
	FAFMin               int      `json:"faf_min"`
	FAFMax               int      `json:"faf_max"`
	FamilyHistoryApplied bool     `json:"family_history_applied"`
}

// BuildControls collects the distinct values of each categorical control in order of
// first appearance.
func BuildControls(t *Table, opts FilterOptions) Controls {
	return Controls{
		Genders:              Distinct(t, func(r Record) string { return r.Gender }),
		FAVC:                 Distinct(t, func(r Record) string { return r.FAVC }),
		CALC:                 Distinct(t, func(r Record) string { return r.CALC }),
		FamilyHistory:        Distinct(t, func(r Record) string { return r.FamilyHistory }),
		FAFMin:               FAFMinBound,
		FAFMax:               FAFMaxBound,
		FamilyHistoryApplied: opts.ApplyFamilyHistory,
	}
}

// Distinct returns the unique values of field over t, first appearance first.
func Distinct(t *Table, field func(Record) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := 0; i < t.Len(); i++ {
		v := field(t.records[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
