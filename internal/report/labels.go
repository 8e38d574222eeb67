// Package report renders sweep results for the terminal: tables, a dual-axis
// chart, outcome sparklines and JSON.
package report

// Labels are the human-readable strings of every view.
type Labels struct {
	// Title is a format string taking the population size.
	Title       string
	Strategy    string
	Trials      string
	Mean        string
	Probability string
	Success     string
	Approx      string
	Exact       string
	Best        string
	Optimal     string
	Sample      string
	Accepted    string
	Fallback    string
}

var labelSets = map[string]Labels{
	"en": {
		Title:       "Population of %d candidates",
		Strategy:    "Strategy (sample size)",
		Trials:      "Trials",
		Mean:        "Mean outcome",
		Probability: "P(best)",
		Success:     "Empirical P(best)",
		Approx:      "s/N·ln(N/s)",
		Exact:       "Exact P(best)",
		Best:        "Best strategy",
		Optimal:     "Optimal threshold",
		Sample:      "Sample",
		Accepted:    "Accepted",
		Fallback:    "no candidate beat the sample, took the last one",
	},
	"zh": {
		Title:       "可能遇到 %d 个异性",
		Strategy:    "策略",
		Trials:      "试验次数",
		Mean:        "期望值估计",
		Probability: "最优概率",
		Success:     "最优概率估计",
		Approx:      "s/N·ln(N/s)",
		Exact:       "最优概率精确值",
		Best:        "最佳策略",
		Optimal:     "理论最优样本量",
		Sample:      "样本",
		Accepted:    "选择",
		Fallback:    "没有人超过样本，选择最后一个",
	},
}

// LabelsFor returns the label set for lang, falling back to English.
func LabelsFor(lang string) Labels {
	if l, ok := labelSets[lang]; ok {
		return l
	}
	return labelSets["en"]
}
