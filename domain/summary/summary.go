// Package summary computes the descriptive numbers shown next to the chart.
package summary

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"obesitydash/domain/survey"
)

// BandCount is the number of rows in one age band.
type BandCount struct {
	Band  survey.AgeBand `json:"band"`
	Count int            `json:"count"`
}

// Summary describes a filtered view relative to the full table.
type Summary struct {
	Rows      int         `json:"rows"`
	TotalRows int         `json:"total_rows"`
	Share     float64     `json:"share"`
	AgeMean   float64     `json:"age_mean"`
	AgeMedian float64     `json:"age_median"`
	AgeP25    float64     `json:"age_p25"`
	AgeP75    float64     `json:"age_p75"`
	FAFMean   float64     `json:"faf_mean"`
	FAFStdDev float64     `json:"faf_std_dev"`
	AgeBands  []BandCount `json:"age_bands"`
}

// Compute summarises view. An empty view yields zero statistics, not an error. Quartiles
// use the nearest-rank method so views of any size have them.
func Compute(view survey.View, totalRows int) (Summary, error) {
	s := Summary{
		Rows:      view.Len(),
		TotalRows: totalRows,
		AgeBands:  make([]BandCount, len(survey.AgeBands)),
	}
	for i, band := range survey.AgeBands {
		s.AgeBands[i].Band = band
	}
	if totalRows > 0 {
		s.Share = float64(s.Rows) / float64(totalRows)
	}
	if view.Len() == 0 {
		return s, nil
	}

	ages := make([]float64, view.Len())
	faf := make([]float64, view.Len())
	bandIndex := make(map[survey.AgeBand]int, len(survey.AgeBands))
	for i, band := range survey.AgeBands {
		bandIndex[band] = i
	}
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		ages[i] = r.Age
		faf[i] = r.FAF
		if bi, ok := bandIndex[r.AgeBand]; ok {
			s.AgeBands[bi].Count++
		}
	}

	var err error
	if s.AgeMean, err = stats.Mean(ages); err != nil {
		return s, err
	}
	if s.AgeMedian, err = stats.Median(ages); err != nil {
		return s, err
	}
	if s.AgeP25, err = stats.PercentileNearestRank(ages, 25); err != nil {
		return s, err
	}
	if s.AgeP75, err = stats.PercentileNearestRank(ages, 75); err != nil {
		return s, err
	}

	if len(faf) > 1 {
		s.FAFMean, s.FAFStdDev = stat.MeanStdDev(faf, nil)
	} else {
		s.FAFMean = faf[0]
	}
	return s, nil
}
