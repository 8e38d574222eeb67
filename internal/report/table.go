package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"secretary-simulation/internal/secretary"
	"secretary-simulation/internal/sweep"
)

// Styles used across views.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Mean    lipgloss.Style
	Success lipgloss.Style
	Approx  lipgloss.Style
	Accent  lipgloss.Style
}

// DefaultStyles returns the palette used by every view.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Cell:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Mean:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Approx:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// table is a static table rendered with right-aligned columns.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func (t *table) addRow(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *table) view(styles Styles) string {
	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(styles.Title.Render(t.title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = style.Width(widths[i]).Align(lipgloss.Right).Render(cell)
		}
		sb.WriteString(strings.Join(parts, "  "))
		sb.WriteString("\n")
	}

	line(t.headers, styles.Header)
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")
	for _, row := range t.rows {
		line(row, styles.Cell)
	}
	return sb.String()
}

// Table writes one row per strategy followed by the best empirical strategy
// and the theoretical optimum.
func Table(w io.Writer, rep *sweep.Report, lbl Labels) error {
	styles := DefaultStyles()
	t := &table{
		title:   fmt.Sprintf(lbl.Title, rep.Population),
		headers: []string{"s", lbl.Trials, lbl.Mean, lbl.Success, lbl.Approx, lbl.Exact},
	}
	for _, res := range rep.Results {
		t.addRow(
			fmt.Sprintf("%d", res.Strategy),
			fmt.Sprintf("%d", res.Trials),
			fmt.Sprintf("%.2f ± %.2f", res.Mean, res.StdErr),
			fmt.Sprintf("%.3f ± %.3f", res.SuccessRate, res.SuccessStdErr),
			fmt.Sprintf("%.3f", res.Approx),
			fmt.Sprintf("%.3f", res.Exact),
		)
	}

	if _, err := io.WriteString(w, t.view(styles)); err != nil {
		return err
	}
	return writeSummary(w, rep, lbl, styles)
}

func writeSummary(w io.Writer, rep *sweep.Report, lbl Labels, styles Styles) error {
	best, ok := rep.Best()
	if !ok {
		return nil
	}
	opt, p := secretary.OptimalThreshold(rep.Population)
	_, err := fmt.Fprintf(w, "%s: s=%d (%.3f)   %s: s=%d (%.3f)\n",
		styles.Accent.Render(lbl.Best), best.Strategy, best.SuccessRate,
		styles.Accent.Render(lbl.Optimal), opt, p)
	return err
}

// Theory writes the closed-form success probabilities of strategies for n
// candidates.
func Theory(w io.Writer, n int, strategies []int, lbl Labels) error {
	styles := DefaultStyles()
	t := &table{
		title:   fmt.Sprintf(lbl.Title, n),
		headers: []string{"s", lbl.Approx, lbl.Exact},
	}
	for _, s := range strategies {
		t.addRow(
			fmt.Sprintf("%d", s),
			fmt.Sprintf("%.4f", secretary.Approx(s, n)),
			fmt.Sprintf("%.4f", secretary.Exact(s, n)),
		)
	}
	if _, err := io.WriteString(w, t.view(styles)); err != nil {
		return err
	}
	opt, p := secretary.OptimalThreshold(n)
	_, err := fmt.Fprintf(w, "%s: s=%d (%.4f), N/e=%.1f\n",
		styles.Accent.Render(lbl.Optimal), opt, p, float64(n)/math.E)
	return err
}
