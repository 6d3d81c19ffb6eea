package survey

// FilterOptions changes how a Selection is applied.
type FilterOptions struct {
	// ApplyFamilyHistory wires the family-history control into the mask. When false the
	// control is collected but has no effect on the rows.
	ApplyFamilyHistory bool
}

type valueSet map[string]struct{}

func newValueSet(values []string) valueSet {
	if len(values) == 0 {
		return nil
	}
	set := make(valueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// admits treats an empty set as "no restriction".
func (s valueSet) admits(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

// Filter returns the rows of t matching sel. The table is not modified and the result
// is always a subset of its rows, possibly empty.
func Filter(t *Table, sel Selection, opts FilterOptions) View {
	genders := newValueSet(sel.Genders)
	favc := newValueSet(sel.FAVC)
	calc := newValueSet(sel.CALC)
	var history valueSet
	if opts.ApplyFamilyHistory {
		history = newValueSet(sel.FamilyHistory)
	}
	threshold := float64(sel.FAFMin)

	index := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.records[i]
		if !genders.admits(r.Gender) ||
			!favc.admits(r.FAVC) ||
			!calc.admits(r.CALC) ||
			!history.admits(r.FamilyHistory) {
			continue
		}
		if r.FAF < threshold {
			continue
		}
		index = append(index, i)
	}
	return View{table: t, index: index}
}
