package model

import (
	"strconv"
	"time"
)

// Report is the persisted record of one synthesis.
type Report struct {
	ID          string     `json:"id" yaml:"id"`
	Order       int        `json:"order" yaml:"order"`
	Class       OrderClass `json:"class" yaml:"class"`
	Method      Method     `json:"method" yaml:"method"`
	Variant     Variant    `json:"variant" yaml:"variant"`
	Planet      Planet     `json:"planet,omitempty" yaml:"planet,omitempty"`
	Square      Square     `json:"square" yaml:"square"`
	GeneratedAt time.Time  `json:"generatedAt" yaml:"generated_at"`
}

// Key identifies the construction a report was produced with. Reports with
// the same key hold the same matrix.
func (r Report) Key() string {
	return string(r.Method) + "/" + r.Variant.String() + "/" + strconv.Itoa(r.Order)
}

// ClassSummary counts batch results for one order class.
type ClassSummary struct {
	Total       int
	Perfect     int
	SemiMagic   int
	Pandiagonal int
}

// BatchSummary aggregates the properties of every square produced by a batch run.
type BatchSummary struct {
	ClassSummary

	ByClass map[OrderClass]ClassSummary
	Failed  int
}

// Add records one report.
func (s *BatchSummary) Add(report Report) {
	if s.ByClass == nil {
		s.ByClass = map[OrderClass]ClassSummary{}
	}

	class := s.ByClass[report.Class]
	class.add(report.Square.Properties)
	s.ByClass[report.Class] = class
	s.add(report.Square.Properties)
}

func (c *ClassSummary) add(p Properties) {
	c.Total++

	if p.IsPerfect {
		c.Perfect++
	}

	if p.IsSemiMagic {
		c.SemiMagic++
	}

	if p.IsPandiagonal {
		c.Pandiagonal++
	}
}

// Drift describes a stored report whose matrix differs from a fresh synthesis.
// Err is set instead of Diff when the report can no longer be regenerated.
type Drift struct {
	Report Report
	Diff   string
	Err    string
}
