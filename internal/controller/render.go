package controller

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	m "loshu.dev/pkg/loshu/internal/model"
)

var classOrder = map[m.OrderClass]int{
	m.ClassOdd:        0,
	m.ClassDoublyEven: 1,
	m.ClassSinglyEven: 2,
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func headline(report m.Report) string {
	return fmt.Sprintf("Order %d (%s, %s, %s), magic constant %d",
		report.Order, report.Class, report.Method, report.Variant, report.Square.MagicConstant)
}

func propertiesLine(p m.Properties) string {
	return fmt.Sprintf("perfect: %s  semi-magic: %s  pandiagonal: %s",
		yesNo(p.IsPerfect), yesNo(p.IsSemiMagic), yesNo(p.IsPandiagonal))
}

func detailsLine(report m.Report) string {
	line := fmt.Sprintf("magic lines: %d  cells: %d", report.Square.MagicLines(), report.Square.Cells())
	if report.Planet != "" {
		line += "  planet: " + string(report.Planet)
	}

	return line
}

func matrixRows(mx m.Matrix) [][]string {
	rows := make([][]string, 0, len(mx))
	for _, row := range mx {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.Itoa(v)
		}

		rows = append(rows, cells)
	}

	return rows
}

func sortedClasses(summary m.BatchSummary) []m.OrderClass {
	classes := make([]m.OrderClass, 0, len(summary.ByClass))
	for class := range summary.ByClass {
		classes = append(classes, class)
	}

	sort.Slice(classes, func(i, j int) bool {
		return classOrder[classes[i]] < classOrder[classes[j]]
	})

	return classes
}

func summaryRow(label string, c m.ClassSummary) []string {
	return []string{
		label,
		strconv.Itoa(c.Total),
		strconv.Itoa(c.Perfect),
		strconv.Itoa(c.SemiMagic),
		strconv.Itoa(c.Pandiagonal),
	}
}

func reportRow(report m.Report) []string {
	return []string{
		strconv.Itoa(report.Order),
		string(report.Class),
		string(report.Method),
		report.Variant.String(),
		strconv.Itoa(report.Square.MagicConstant),
		yesNo(report.Square.Properties.IsPerfect),
		yesNo(report.Square.Properties.IsPandiagonal),
		report.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
}

func sumsLine(label string, sums []int) string {
	parts := make([]string, len(sums))
	for i, s := range sums {
		parts[i] = strconv.Itoa(s)
	}

	return fmt.Sprintf("%s: [%s]", label, strings.Join(parts, " "))
}

// analysisDetails lists the sums of a matrix that failed verification.
func analysisDetails(a m.Analysis) []string {
	return []string{
		fmt.Sprintf("target: %d  normal: %s", a.Target, yesNo(a.Normal)),
		sumsLine("rows", a.RowSums),
		sumsLine("columns", a.ColumnSums),
		fmt.Sprintf("diagonals: %d %d", a.MainDiagonal, a.AntiDiagonal),
		propertiesLine(a.Properties),
	}
}

var reportHeaders = []string{"Order", "Class", "Method", "Variant", "Constant", "Perfect", "Pandiagonal", "Generated"}

var summaryHeaders = []string{"Class", "Total", "Perfect", "Semi-magic", "Pandiagonal"}
