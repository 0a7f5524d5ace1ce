package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report styles.
var (
	styleDay    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleAnswer = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleTiming = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stylePass   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFail   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// histogramWidth is the bar length of the slowest day.
const histogramWidth = 40

// Report renders one line per result: day, answers, elapsed time and
// the answer verdict when verification is on.
func Report(results []Result) string {
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "%s  ", styleDay.Render(fmt.Sprintf("%d day %02d", res.Year, res.Day)))
		if res.Failed() {
			fmt.Fprintf(&b, "%s\n", styleFail.Render(res.Err.Error()))
			continue
		}

		fmt.Fprintf(&b, "%-22s %-22s %s",
			styleAnswer.Render(res.Solution.A()),
			styleAnswer.Render(res.Solution.B()),
			styleTiming.Render(res.Elapsed.String()))
		switch res.Verdict {
		case VerdictPass:
			fmt.Fprintf(&b, "  %s", stylePass.Render("✓"))
		case VerdictFail:
			fmt.Fprintf(&b, "  %s", styleFail.Render("✗ "+res.Verdict.String()))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Histogram renders the benchmark durations as horizontal bars on a
// log scale, so a microsecond day stays visible next to a second one.
func Histogram(results []Result) string {
	ceiling := 0.0
	for _, res := range results {
		if !res.Failed() {
			ceiling = math.Max(ceiling, logNanos(res))
		}
	}
	if ceiling == 0 {
		return ""
	}

	var b strings.Builder
	for _, res := range results {
		label := fmt.Sprintf("%d/%02d", res.Year, res.Day)
		if res.Failed() {
			fmt.Fprintf(&b, "%8s  %s\n", label, styleFail.Render("failed"))
			continue
		}

		width := max(1, int(histogramWidth*logNanos(res)/ceiling))
		fmt.Fprintf(&b, "%8s  %s %s\n",
			label,
			styleBar.Render(strings.Repeat("▇", width)),
			styleTiming.Render(res.Elapsed.String()))
	}

	return b.String()
}

// logNanos compresses a duration for the histogram scale.
func logNanos(res Result) float64 {
	return math.Log10(math.Max(1, float64(res.Elapsed.Nanoseconds())))
}
