package chart

import "obesitydash/domain/survey"

// Title is the fixed chart title.
const Title = "Obesity by Gender"

// Series is one colored bar segment group, one count per category.
type Series struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// Spec is a renderer-independent description of the stacked bar chart.
type Spec struct {
	Title      string   `json:"title"`
	XLabel     string   `json:"x_label"`
	YLabel     string   `json:"y_label"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

// Empty reports whether the chart has nothing to draw.
func (s Spec) Empty() bool {
	return len(s.Categories) == 0
}

// CategoryTotal is the stacked height of the i-th category.
func (s Spec) CategoryTotal(i int) int {
	total := 0
	for _, series := range s.Series {
		total += series.Counts[i]
	}
	return total
}

// Total is the number of rows represented in the chart.
func (s Spec) Total() int {
	total := 0
	for i := range s.Categories {
		total += s.CategoryTotal(i)
	}
	return total
}

// MaxCategoryTotal is the tallest stacked bar.
func (s Spec) MaxCategoryTotal() int {
	max := 0
	for i := range s.Categories {
		if t := s.CategoryTotal(i); t > max {
			max = t
		}
	}
	return max
}

// Count returns the count for a (category, series) pair, 0 when absent.
func (s Spec) Count(category, series string) int {
	ci := indexOf(s.Categories, category)
	if ci < 0 {
		return 0
	}
	for _, sr := range s.Series {
		if sr.Name == series {
			return sr.Counts[ci]
		}
	}
	return 0
}

// BuildBarSpec groups the view by (Gender, NObeyesdad) and counts rows. Categories and
// series keep first-appearance order.
func BuildBarSpec(view survey.View) Spec {
	spec := Spec{
		Title:      Title,
		XLabel:     survey.ColumnGender,
		YLabel:     "count",
		Categories: []string{},
		Series:     []Series{},
	}

	categoryIndex := make(map[string]int)
	seriesIndex := make(map[string]int)
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)

		ci, ok := categoryIndex[r.Gender]
		if !ok {
			ci = len(spec.Categories)
			categoryIndex[r.Gender] = ci
			spec.Categories = append(spec.Categories, r.Gender)
			for s := range spec.Series {
				spec.Series[s].Counts = append(spec.Series[s].Counts, 0)
			}
		}

		si, ok := seriesIndex[r.NObeyesdad]
		if !ok {
			si = len(spec.Series)
			seriesIndex[r.NObeyesdad] = si
			spec.Series = append(spec.Series, Series{
				Name:   r.NObeyesdad,
				Counts: make([]int, len(spec.Categories)),
			})
		}

		spec.Series[si].Counts[ci]++
	}
	return spec
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}
