package api

import "time"

type ReportDefinition struct {
	Name        string `json:"name"`
	Dataset     string `json:"dataset"`
	Description string `json:"description"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type ReportSection struct {
	Title string   `json:"title,omitempty"`
	Lines []string `json:"lines"`
}

type Report struct {
	Name     string          `json:"name"`
	Title    string          `json:"title,omitempty"`
	Period   *TimePeriod     `json:"period,omitempty"`
	Sections []ReportSection `json:"sections"`
	Text     []string        `json:"text"`
}
