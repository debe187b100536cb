package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "loshu.dev/pkg/loshu/internal/model"
)

func sampleReport(order int, method m.Method, variant m.Variant) m.Report {
	return m.Report{
		ID:      "id-" + string(method),
		Order:   order,
		Class:   m.ClassOdd,
		Method:  method,
		Variant: variant,
		Planet:  m.PlanetFor(order),
		Square: m.Square{
			Dimension:     3,
			MagicConstant: 15,
			Matrix:        m.Matrix{{8, 1, 6}, {3, 5, 7}, {4, 9, 2}},
			Properties:    m.Properties{IsPerfect: true, IsSemiMagic: true},
		},
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "reports")

	reports := []m.Report{
		sampleReport(3, m.MethodSiamese, m.VariantIdentity),
		sampleReport(3, m.MethodSiamese, m.VariantFlipVertical),
	}

	require.NoError(t, store.SaveReports(m.Path(dir), reports))

	for _, report := range reports {
		assert.FileExists(t, filepath.Join(dir, ReportFileName(report)))
	}

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// order-3-siamese-flip-vertical sorts before order-3-siamese-identity
	assert.Equal(t, reports[1], loaded[0])
	assert.Equal(t, reports[0], loaded[1])
}

func TestLocalReportStore_SaveOverwritesSameConstruction(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	first := sampleReport(3, m.MethodSiamese, m.VariantIdentity)
	second := first
	second.ID = "replacement"

	require.NoError(t, store.SaveReports(m.Path(dir), []m.Report{first}))
	require.NoError(t, store.SaveReports(m.Path(dir), []m.Report{second}))

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "replacement", loaded[0].ID)
}

func TestLocalReportStore_LoadMissingDirectory(t *testing.T) {
	store := NewReportStore()

	loaded, err := store.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLocalReportStore_LoadSkipsForeignFiles(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	require.NoError(t, store.SaveReports(m.Path(dir), []m.Report{sampleReport(3, m.MethodSiamese, m.VariantIdentity)}))
	writeTestFile(t, filepath.Join(dir, "notes.txt"), "not a report")
	mustMkdir(t, filepath.Join(dir, "nested.yaml"))

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLocalReportStore_LoadRejectsCorruptReport(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "order-3-siamese-identity.yaml"), "order: [unterminated")

	_, err := store.LoadReports(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}

func TestLocalReportStore_SaveRequiresDirectory(t *testing.T) {
	store := NewReportStore()

	err := store.SaveReports("", []m.Report{sampleReport(3, m.MethodSiamese, m.VariantIdentity)})
	require.Error(t, err)
}

func TestReportFileName(t *testing.T) {
	report := sampleReport(6, m.MethodLUX, m.VariantRotate90)
	assert.Equal(t, "order-6-lux-rotate-90.yaml", ReportFileName(report))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
