// Package testkit provides survey fixtures shared by package tests.
package testkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"obesitydash/domain/survey"
)

// Row is a compact fixture row in file column order.
type Row struct {
	Gender        string
	Age           float64
	FAVC          string
	FAF           float64
	CALC          string
	FamilyHistory string
	NObeyesdad    string
}

// ScenarioRows is the three-respondent end-to-end scenario.
var ScenarioRows = []Row{
	{"Male", 25, "no", 1, "Sometimes", "no", "Normal"},
	{"Female", 19, "yes", 0, "no", "yes", "Obesity"},
	{"Male", 42, "no", 3, "Frequently", "no", "Overweight"},
}

// Table builds a survey table, panicking on invalid fixture ages.
func Table(rows []Row) *survey.Table {
	records := make([]survey.Record, len(rows))
	for i, r := range rows {
		rec, err := survey.NewRecord(r.Gender, r.Age, r.FAVC, r.FAF, r.CALC, r.FamilyHistory, r.NObeyesdad)
		if err != nil {
			panic(fmt.Sprintf("testkit: invalid fixture row %d: %v", i, err))
		}
		records[i] = rec
	}
	return survey.NewTable(records)
}

// ScenarioTable is Table(ScenarioRows).
func ScenarioTable() *survey.Table {
	return Table(ScenarioRows)
}

// CSV renders rows as a survey file with the required header plus an ignored column.
func CSV(rows []Row) string {
	var b strings.Builder
	b.WriteString("Gender,Age,Height,FAVC,FAF,CALC,family_history_with_overweight,NObeyesdad\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,1.70,%s,%s,%s,%s,%s\n",
			r.Gender,
			strconv.FormatFloat(r.Age, 'f', -1, 64),
			r.FAVC,
			strconv.FormatFloat(r.FAF, 'f', -1, 64),
			r.CALC,
			r.FamilyHistory,
			r.NObeyesdad,
		)
	}
	return b.String()
}

// WriteCSV writes rows to dir/name and returns the path.
func WriteCSV(dir, name string, rows []Row) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(CSV(rows)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// StaticSource is an in-memory ports.SurveySource that counts loads.
type StaticSource struct {
	Table *survey.Table
	Err   error
	loads atomic.Int64
}

// NewStaticSource serves table on every load.
func NewStaticSource(table *survey.Table) *StaticSource {
	return &StaticSource{Table: table}
}

// LoadTable implements ports.SurveySource.
func (s *StaticSource) LoadTable(ctx context.Context) (*survey.Table, error) {
	s.loads.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Table, ctx.Err()
}

// Describe implements ports.SurveySource.
func (s *StaticSource) Describe() string {
	return "static"
}

// Loads reports how many times LoadTable was called.
func (s *StaticSource) Loads() int {
	return int(s.loads.Load())
}
