package app

import (
	"net/url"
	"strconv"
	"strings"

	"obesitydash/domain/survey"
	"obesitydash/internal/errors"
)

// Query parameter names of the sidebar controls
const (
	ParamGender        = "gender"
	ParamFAVC          = "favc"
	ParamCALC          = "calc"
	ParamFamilyHistory = "fh"
	ParamFAF           = "faf"
)

// ParseSelection reads widget state from a query string. Multi-selects repeat their
// parameter; blank entries are dropped.
func ParseSelection(q url.Values) (survey.Selection, error) {
	sel := survey.Selection{
		Genders:       multiValue(q, ParamGender),
		FAVC:          multiValue(q, ParamFAVC),
		CALC:          multiValue(q, ParamCALC),
		FamilyHistory: multiValue(q, ParamFamilyHistory),
		FAFMin:        survey.FAFMinBound,
	}

	if raw := strings.TrimSpace(q.Get(ParamFAF)); raw != "" {
		faf, err := strconv.Atoi(raw)
		if err != nil {
			return survey.Selection{}, errors.InvalidInput("faf must be an integer", err)
		}
		sel.FAFMin = faf
	}
	if err := sel.Validate(); err != nil {
		return survey.Selection{}, errors.InvalidInput("invalid faf", err)
	}
	return sel, nil
}

// EncodeSelection is the inverse of ParseSelection, used for download links.
func EncodeSelection(sel survey.Selection) url.Values {
	q := url.Values{}
	for _, v := range sel.Genders {
		q.Add(ParamGender, v)
	}
	for _, v := range sel.FAVC {
		q.Add(ParamFAVC, v)
	}
	for _, v := range sel.CALC {
		q.Add(ParamCALC, v)
	}
	for _, v := range sel.FamilyHistory {
		q.Add(ParamFamilyHistory, v)
	}
	if sel.FAFMin != survey.FAFMinBound {
		q.Set(ParamFAF, strconv.Itoa(sel.FAFMin))
	}
	return q
}

func multiValue(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}
