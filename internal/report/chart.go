package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"secretary-simulation/internal/sweep"
)

const (
	chartHeight = 16
	colWidth    = 2
	axisWidth   = 6
)

const (
	markMean    = '●'
	markSuccess = '■'
	markApprox  = '·'
)

type cell struct {
	mark  rune
	style lipgloss.Style
}

// Chart draws mean outcome against the left axis and success probability
// (empirical and s/N·ln(N/s)) against the right axis, one column per
// strategy.
func Chart(w io.Writer, rep *sweep.Report, lbl Labels) error {
	styles := DefaultStyles()
	results := rep.Results
	if len(results) == 0 {
		return nil
	}

	meanMax := float64(max(rep.Population-1, 1))
	probMax := 0.0
	for _, res := range results {
		probMax = max(probMax, res.SuccessRate, res.Approx)
	}
	probMax = max(math.Ceil(probMax*10)/10, 0.1)

	grid := make([][]cell, chartHeight)
	for i := range grid {
		grid[i] = make([]cell, len(results))
	}
	plot := func(col int, v, vmax float64, mark rune, style lipgloss.Style) {
		row := int(math.Round(v / vmax * float64(chartHeight-1)))
		row = max(0, min(row, chartHeight-1))
		grid[chartHeight-1-row][col] = cell{mark: mark, style: style}
	}
	// Later series draw over earlier ones.
	for col, res := range results {
		plot(col, res.Approx, probMax, markApprox, styles.Approx)
		plot(col, res.SuccessRate, probMax, markSuccess, styles.Success)
		plot(col, res.Mean, meanMax, markMean, styles.Mean)
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf(lbl.Title, rep.Population)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		styles.Mean.Render(string(markMean)), lbl.Mean,
		styles.Success.Render(string(markSuccess)), lbl.Success,
		styles.Approx.Render(string(markApprox)), lbl.Approx))
	sb.WriteString(axisCaptions(lbl, len(results), styles))

	for i, row := range grid {
		left, right := "", ""
		switch i {
		case 0:
			left, right = fmt.Sprintf("%.0f", meanMax), fmt.Sprintf("%.2f", probMax)
		case chartHeight / 2:
			frac := float64(chartHeight-1-i) / float64(chartHeight-1)
			left, right = fmt.Sprintf("%.0f", meanMax*frac), fmt.Sprintf("%.2f", probMax*frac)
		case chartHeight - 1:
			left, right = "0", "0.00"
		}
		sb.WriteString(styles.Mean.Width(axisWidth).Align(lipgloss.Right).Render(left))
		sb.WriteString(" │")
		for _, c := range row {
			if c.mark == 0 {
				sb.WriteString(strings.Repeat(" ", colWidth))
				continue
			}
			sb.WriteString(c.style.Render(string(c.mark)))
			sb.WriteString(strings.Repeat(" ", colWidth-1))
		}
		sb.WriteString("│ ")
		sb.WriteString(styles.Success.Render(right))
		sb.WriteString("\n")
	}

	pad := strings.Repeat(" ", axisWidth+1)
	sb.WriteString(pad)
	sb.WriteString("└")
	sb.WriteString(strings.Repeat("─", len(results)*colWidth))
	sb.WriteString("┘\n")
	sb.WriteString(pad)
	sb.WriteString(" ")
	sb.WriteString(ticks(results))
	sb.WriteString("\n")
	sb.WriteString(pad)
	sb.WriteString(" ")
	sb.WriteString(styles.Muted.Render(lbl.Strategy))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	return writeSummary(w, rep, lbl, styles)
}

// axisCaptions names the left axis at the start of the line and the right
// axis above the right-hand tick labels.
func axisCaptions(lbl Labels, cols int, styles Styles) string {
	rightAt := axisWidth + 2 + cols*colWidth + 2
	gap := max(1, rightAt-lipgloss.Width(lbl.Mean))
	return styles.Mean.Render(lbl.Mean) + strings.Repeat(" ", gap) +
		styles.Success.Render(lbl.Probability) + "\n"
}

// ticks labels strategy columns, skipping labels that would overlap.
func ticks(results []sweep.Result) string {
	line := []rune(strings.Repeat(" ", len(results)*colWidth+4))
	next := 0
	for col, res := range results {
		pos := col * colWidth
		if pos < next {
			continue
		}
		label := []rune(fmt.Sprintf("%d", res.Strategy))
		if pos+len(label) > len(line) {
			break
		}
		copy(line[pos:], label)
		next = pos + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}
