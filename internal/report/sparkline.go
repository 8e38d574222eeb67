package report

import (
	"fmt"
	"io"
	"strings"

	"secretary-simulation/internal/sweep"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

// Sparklines writes the outcome sequence of every strategy as a sparkline,
// labelled "s / mean / successes". Results without outcomes are skipped.
func Sparklines(w io.Writer, rep *sweep.Report, lbl Labels) error {
	styles := DefaultStyles()
	top := max(rep.Population-1, 1)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf(lbl.Title, rep.Population)))
	sb.WriteString("\n")
	for _, res := range rep.Results {
		if len(res.Outcomes) == 0 {
			continue
		}
		legend := fmt.Sprintf("%d / %.2f / %d", res.Strategy, res.Mean, res.Successes)
		sb.WriteString(styles.Accent.Render(fmt.Sprintf("%-18s", legend)))
		sb.WriteString(" ")
		sb.WriteString(spark(res.Outcomes, top))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func spark(values []int, top int) string {
	out := make([]rune, len(values))
	for i, v := range values {
		idx := v * (len(blocks) - 1) / top
		out[i] = blocks[max(0, min(idx, len(blocks)-1))]
	}
	return string(out)
}
