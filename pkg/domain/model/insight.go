package model

import "github.com/m-mizutani/goerr/v2"

// InsightReport is the structured narrative derived from a KPI summary.
// The shape is fixed; content varies by generation path.
type InsightReport struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	Trends          []string `json:"trends"`
}

// Validate checks that all five fields carry usable content
func (r *InsightReport) Validate() error {
	if r.Summary == "" {
		return goerr.New("insight summary is empty")
	}
	if len(r.Strengths) == 0 {
		return goerr.New("insight strengths are empty")
	}
	if len(r.Improvements) == 0 {
		return goerr.New("insight improvements are empty")
	}
	if len(r.Recommendations) == 0 {
		return goerr.New("insight recommendations are empty")
	}
	if len(r.Trends) == 0 {
		return goerr.New("insight trends are empty")
	}
	return nil
}
