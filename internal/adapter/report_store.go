package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "loshu.dev/pkg/loshu/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists synthesis reports under a directory.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

// LocalReportStore keeps one YAML document per construction (order, method,
// variant), so saving the same construction twice overwrites the older file.
type LocalReportStore struct{}

// NewReportStore creates a ReportStore backed by the local filesystem.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes every report into path, creating it if needed.
func (s *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	for _, report := range reports {
		content, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report %s: %w", report.ID, err)
		}

		target := filepath.Join(string(path), ReportFileName(report))
		if err := os.WriteFile(target, content, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", target, err)
		}

		slog.Debug("Saved report", "path", target, "order", report.Order, "method", report.Method)
	}

	return nil
}

// LoadReports reads every report in path ordered by file name. A missing
// directory yields no reports.
func (s *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(path))
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Reports directory does not exist", "path", path)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		target := filepath.Join(string(path), name)

		// #nosec G304 - target is listed from the reports directory
		content, err := os.ReadFile(target)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", target, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(content, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", target, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// ReportFileName is the file a report is stored in.
func ReportFileName(report m.Report) string {
	return fmt.Sprintf("order-%d-%s-%s%s", report.Order, report.Method, report.Variant, reportExt)
}
