package survey

// Table is the full, immutable survey dataset.
type Table struct {
	records []Record
}

// NewTable takes a private copy of records.
func NewTable(records []Record) *Table {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Table{records: owned}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the i-th record by value.
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Records returns a copy of all records.
func (t *Table) Records() []Record {
	out := make([]Record, t.Len())
	if t != nil {
		copy(out, t.records)
	}
	return out
}

// All returns a view over every row of the table.
func (t *Table) All() View {
	index := make([]int, t.Len())
	for i := range index {
		index[i] = i
	}
	return View{table: t, index: index}
}

// View is a filtered subset of a table's rows. It never owns or mutates records.
type View struct {
	table *Table
	index []int
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.index)
}

// At returns the i-th row of the view.
func (v View) At(i int) Record {
	return v.table.records[v.index[i]]
}

// Indices returns the positions of the view's rows in the source table.
func (v View) Indices() []int {
	out := make([]int, len(v.index))
	copy(out, v.index)
	return out
}

// Records returns a copy of the view's rows.
func (v View) Records() []Record {
	out := make([]Record, len(v.index))
	for i, idx := range v.index {
		out[i] = v.table.records[idx]
	}
	return out
}

// Source returns the table the view was derived from.
func (v View) Source() *Table {
	return v.table
}
