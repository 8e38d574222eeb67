package report

import (
	"fmt"
	"io"
	"strings"

	"secretary-simulation/internal/secretary"
)

// Trace writes a single trial: the arrival order with the calibration sample
// dimmed and the accepted candidate highlighted.
func Trace(w io.Writer, tr secretary.Trial, lbl Labels) error {
	styles := DefaultStyles()
	n := len(tr.Permutation)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf(lbl.Title, n)))
	sb.WriteString("\n")

	for i, v := range tr.Permutation {
		if i > 0 {
			sb.WriteString(" ")
		}
		s := fmt.Sprintf("%d", v)
		switch {
		case i == tr.Position:
			sb.WriteString(styles.Accent.Render("[" + s + "]"))
		case i < tr.Threshold:
			sb.WriteString(styles.Muted.Render(s))
		default:
			sb.WriteString(s)
		}
	}
	sb.WriteString("\n")

	best := "-∞"
	if tr.BestOfSample >= 0 {
		best = fmt.Sprintf("%d", tr.BestOfSample)
	}
	fmt.Fprintf(&sb, "%s: s=%d max=%s\n", lbl.Sample, tr.Threshold, best)
	fmt.Fprintf(&sb, "%s: %d @ %d", lbl.Accepted, tr.Outcome, tr.Position)
	if tr.Best() {
		sb.WriteString(" ★")
	}
	sb.WriteString("\n")
	if tr.Fallback {
		sb.WriteString(styles.Muted.Render(lbl.Fallback))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
