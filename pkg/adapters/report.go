package adapters

import (
	"slices"

	"github.com/de-tools/data-reports/pkg/models/api"
	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/services/report"
)

func MapDefinitionDomainToApi(def report.Definition) api.ReportDefinition {
	return api.ReportDefinition{
		Name:        def.Name,
		Dataset:     string(def.Dataset),
		Description: def.Description,
	}
}

func MapTimePeriodDomainToApi(p domain.TimePeriod) api.TimePeriod {
	return api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration(),
	}
}

func MapReportSectionDomainToApi(s domain.ReportSection) api.ReportSection {
	lines := slices.Clone(s.Lines)
	if lines == nil {
		lines = []string{}
	}
	return api.ReportSection{Title: s.Title, Lines: lines}
}

// MapReportDomainToApi keeps both the structured sections and the rendered text lines.
func MapReportDomainToApi(name string, r *domain.Report, period *domain.TimePeriod, text []string) api.Report {
	out := api.Report{
		Name:     name,
		Title:    r.Title,
		Sections: make([]api.ReportSection, 0, len(r.Sections)),
		Text:     text,
	}
	if out.Text == nil {
		out.Text = []string{}
	}
	for _, s := range r.Sections {
		out.Sections = append(out.Sections, MapReportSectionDomainToApi(s))
	}
	if period != nil {
		p := MapTimePeriodDomainToApi(*period)
		out.Period = &p
	}
	return out
}
