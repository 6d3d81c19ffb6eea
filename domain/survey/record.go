package survey

// Column names as they appear in the survey file header.
const (
	ColumnGender        = "Gender"
	ColumnAge           = "Age"
	ColumnFAVC          = "FAVC"
	ColumnFAF           = "FAF"
	ColumnCALC          = "CALC"
	ColumnFamilyHistory = "family_history_with_overweight"
	ColumnObesity       = "NObeyesdad"
	ColumnAgeBand       = "AgeBand"
)

// RequiredColumns must all be present in the source header. Other columns are ignored.
var RequiredColumns = []string{
	ColumnGender,
	ColumnAge,
	ColumnFAVC,
	ColumnFAF,
	ColumnCALC,
	ColumnFamilyHistory,
	ColumnObesity,
}

// Record is a single survey respondent.
type Record struct {
	Gender        string  `json:"gender"`
	Age           float64 `json:"age"`
	FAVC          string  `json:"favc"`
	FAF           float64 `json:"faf"`
	CALC          string  `json:"calc"`
	FamilyHistory string  `json:"family_history_with_overweight"`
	NObeyesdad    string  `json:"nobeyesdad"`
	AgeBand       AgeBand `json:"age_band"`
}

// NewRecord builds a record and derives its AgeBand.
func NewRecord(gender string, age float64, favc string, faf float64, calc, familyHistory, label string) (Record, error) {
	band, err := DeriveAgeBand(age)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Gender:        gender,
		Age:           age,
		FAVC:          favc,
		FAF:           faf,
		CALC:          calc,
		FamilyHistory: familyHistory,
		NObeyesdad:    label,
		AgeBand:       band,
	}, nil
}

// ExportColumns is the column order used when a view is written back out.
var ExportColumns = append(append([]string{}, RequiredColumns...), ColumnAgeBand)
