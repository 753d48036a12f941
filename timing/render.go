package timing

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xlab/treeprint"
)

func splitName(name string) (parent, leaf string) {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// Tree renders the summaries of names as a tree, nesting "/"-separated names
// under their prefixes. A nil names renders every recorded name.
func (p *Profiler) Tree(names []string) string {
	if names == nil {
		names = p.Names()
	}
	prefixes := make(map[string]bool)
	for _, name := range names {
		parts := strings.Split(name, "/")
		for i := 1; i < len(parts); i++ {
			prefixes[strings.Join(parts[:i], "/")] = true
		}
	}

	root := treeprint.NewWithRoot("profile")
	branches := map[string]treeprint.Tree{"": root}
	var branch func(path string) treeprint.Tree
	branch = func(path string) treeprint.Tree {
		if b, ok := branches[path]; ok {
			return b
		}
		parent, leaf := splitName(path)
		b := branch(parent).AddBranch(leaf)
		branches[path] = b
		return b
	}

	for _, name := range names {
		if strings.HasPrefix(name, separatorPrefix) {
			continue
		}
		s, _ := p.Summary(name)
		meta := fmt.Sprintf("%d calls", s.Count)
		parent, leaf := splitName(name)
		value := fmt.Sprintf("%s  total %.6fs avg %.6fs", leaf, s.Sum, s.Mean)
		if prefixes[name] {
			b := branch(name)
			b.SetMetaValue(meta)
			b.SetValue(value)
			continue
		}
		branch(parent).AddMetaNode(meta, value)
	}
	return root.String()
}

func (p *Profiler) PrintTree(names []string) {
	fmt.Fprint(p.writer(), p.Tree(names))
}

// WriteChart renders an HTML page with one line series per name, plotting
// each sample against its recording index. A nil names charts every name.
func (p *Profiler) WriteChart(w io.Writer, names []string) error {
	if names == nil {
		names = p.Names()
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Profile samples",
			Subtitle: "value of each recording, in order",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)

	longest := 0
	for _, name := range names {
		longest = max(longest, len(p.data[name]))
	}
	xs := make([]int, longest)
	for i := range xs {
		xs[i] = i + 1
	}
	line.SetXAxis(xs)

	for _, name := range names {
		if strings.HasPrefix(name, separatorPrefix) {
			continue
		}
		samples := p.data[name]
		points := make([]opts.LineData, len(samples))
		for i, v := range samples {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, points)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
