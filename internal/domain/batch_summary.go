package domain

import (
	"sort"

	m "loshu.dev/pkg/loshu/internal/model"
	pkg "loshu.dev/pkg/loshu/pkg"
)

func batchSummaryFromReports(reports pkg.FileSpill[m.Report]) (m.BatchSummary, error) {
	summary := m.BatchSummary{ByClass: map[m.OrderClass]m.ClassSummary{}}

	err := reports.Range(func(_ uint64, report m.Report) error {
		summary.Add(report)
		return nil
	})
	if err != nil {
		return m.BatchSummary{}, err
	}

	return summary, nil
}

// reportsFromSpill reads every spilled report back, ordered by key.
func reportsFromSpill(spill pkg.FileSpill[m.Report]) ([]m.Report, error) {
	reports := make([]m.Report, 0, spill.Len())

	err := spill.Range(func(_ uint64, report m.Report) error {
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Order != reports[j].Order {
			return reports[i].Order < reports[j].Order
		}

		return reports[i].Key() < reports[j].Key()
	})

	return reports, nil
}
