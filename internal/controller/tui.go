package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	m "loshu.dev/pkg/loshu/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	delLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// reservedLines is the room kept for the banner and the pager footer.
const reservedLines = 6

// TUI implements UI with lipgloss styling and a Bubble Tea pager for long listings.
type TUI struct {
	output   io.Writer
	mode     StartMode
	progress progress.Model
	width    int
	height   int
	mu       sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{
		output:   output,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			tui.width = width
			tui.height = height
		}
	}

	return tui
}

// Start prints the banner for the selected mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	p.mode = cfg.mode
	p.printf("%s\n\n", titleStyle.Render("Loshu - "+cfg.mode.String()))

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait returns immediately; the pager blocks inside DisplayReports.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplaySquare renders the matrix as a bordered grid.
func (p *TUI) DisplaySquare(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	grid := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		BorderRow(true).
		Rows(matrixRows(report.Square.Matrix)...).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })

	p.printf("%s\n%s\n", titleStyle.Render(headline(report)), grid.Render())
	p.printf("%s\n%s\n\n", p.propertiesView(report.Square.Properties), faintStyle.Render(detailsLine(report)))

	return nil
}

func (p *TUI) propertiesView(props m.Properties) string {
	mark := func(label string, v bool) string {
		if v {
			return okStyle.Render("✓ " + label)
		}

		return faintStyle.Render("✗ " + label)
	}

	return strings.Join([]string{
		mark("perfect", props.IsPerfect),
		mark("semi-magic", props.IsSemiMagic),
		mark("pandiagonal", props.IsPandiagonal),
	}, "  ")
}

// DisplayAnalysis prints the verdict for one verified file.
func (p *TUI) DisplayAnalysis(ctx context.Context, file m.SquareFile, analysis m.Analysis, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		p.printf("%s %s: %v\n", failStyle.Render("✗"), file.Path, err)
		return nil
	}

	if analysis.IsMagic() {
		p.printf("%s %s: order %d, magic constant %d\n", okStyle.Render("✓"), file.Path, analysis.Order, analysis.Target)
		return nil
	}

	p.printf("%s %s: order %d is not a magic square\n", failStyle.Render("✗"), file.Path, analysis.Order)

	for _, line := range analysisDetails(analysis) {
		p.printf("    %s\n", faintStyle.Render(line))
	}

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int, jobs int) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.printf("%s\n", faintStyle.Render(fmt.Sprintf("%d square(s), %d worker(s), shard %d/%d", jobs, threads, shardIndex, shardCount)))
}

// DisplayBatchProgress redraws the progress bar in place.
func (p *TUI) DisplayBatchProgress(ctx context.Context, _ m.Report, done int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if total <= 0 {
		return
	}

	end := ""
	if done >= total {
		end = "\n"
	}

	p.printf("\r%s %d/%d%s", p.progress.ViewAs(float64(done)/float64(total)), done, total, end)
}

// DisplayBatchSummary renders the per-class property counts.
func (p *TUI) DisplayBatchSummary(ctx context.Context, summary m.BatchSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(summary.ByClass)+1)
	for _, class := range sortedClasses(summary) {
		rows = append(rows, summaryRow(string(class), summary.ByClass[class]))
	}

	rows = append(rows, summaryRow("total", summary.ClassSummary))

	p.printf("\n%s\n", p.listTable(summaryHeaders, rows).Render())

	if summary.Failed > 0 {
		p.printf("%s\n", failStyle.Render(fmt.Sprintf("Failed: %d", summary.Failed)))
	}

	return nil
}

// DisplayReports lists stored reports, paging through them when they do not fit the terminal.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		p.printf("  📭 No reports found\n")
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, reportRow(report))
	}

	content := p.listTable(reportHeaders, rows).Render()

	if !p.needsPagination(content) {
		p.printf("%s\n", content)
		return nil
	}

	pager := newPagerModel(content, p.width, p.height-reservedLines)
	program := tea.NewProgram(pager, tea.WithOutput(p.output), tea.WithAltScreen())

	_, err := program.Run()

	return err
}

// DisplayDrift prints colored diffs for every report that no longer matches.
func (p *TUI) DisplayDrift(ctx context.Context, drifts []m.Drift, checked int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(drifts) == 0 {
		p.printf("%s\n", okStyle.Render(fmt.Sprintf("All %d report(s) match a fresh synthesis", checked)))
		return nil
	}

	for _, drift := range drifts {
		p.printf("%s\n", failStyle.Render("drift: "+drift.Report.Key()))

		if drift.Err != "" {
			p.printf("    %s\n", faintStyle.Render("cannot regenerate: "+drift.Err))
			continue
		}

		for _, line := range strings.Split(strings.TrimRight(drift.Diff, "\n"), "\n") {
			p.printf("%s\n", colorDiffLine(line))
		}
	}

	p.printf("%s\n", failStyle.Render(fmt.Sprintf("%d of %d report(s) drifted", len(drifts), checked)))

	return nil
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return faintStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addLineStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return delLineStyle.Render(line)
	default:
		return line
	}
}

func (p *TUI) listTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func (p *TUI) needsPagination(content string) bool {
	if p.height == 0 {
		return false
	}

	return strings.Count(content, "\n")+1 > p.height-reservedLines
}

func (p *TUI) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.output, format, args...)
}

// pagerModel scrolls long listings inside a viewport.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	if height < 1 {
		height = 1
	}

	vp := viewport.New(width, height)
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(1, msg.Height-reservedLines)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := faintStyle.Render(fmt.Sprintf("  %3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100))

	return titleStyle.Render("Loshu - reports") + "\n\n" + pm.viewport.View() + "\n\n" + footer
}
