package core

import (
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/checkdiff/checkdiff/internal/types"
)

// WriteDiffChart renders a bar chart of per-project added/removed counts
// next to the summary index and returns the page's file name. Projects with
// no diff at all are left off the chart. Returns an empty name when there is
// nothing to chart.
func WriteDiffChart(diffRoot string, stats []types.ProjectDiffStat) (string, error) {
	var labels []string
	var added, removed []opts.BarData
	for _, st := range stats {
		if !st.HasDiff() {
			continue
		}
		labels = append(labels, st.Project)
		added = append(added, opts.BarData{Value: st.Added})
		removed = append(removed, opts.BarData{Value: st.Removed})
	}
	if len(labels) == 0 {
		return "", nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Diff counts per project",
			Subtitle: "violations added and removed between base and patch",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("added", added, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#1a7f37"}))
	bar.AddSeries("removed", removed, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#cf222e"}))

	out := filepath.Join(diffRoot, ChartFileName)
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := bar.Render(f); err != nil {
		return "", err
	}
	return ChartFileName, nil
}
