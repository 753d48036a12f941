package timing

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colorfulnotion/arcutil/log"
	"golang.org/x/exp/slices"
)

// separatorPrefix marks a PrintGroupSummary entry that prints a divider row.
const separatorPrefix = "~~~"

// Profiler stores the samples of many named stopwatches. The zero value is
// ready to use. A Profiler is not safe for concurrent use.
type Profiler struct {
	data     map[string][]float64
	timers   map[string]*Stopwatch
	prealloc [][]float64
	out      io.Writer
}

func NewProfiler() *Profiler {
	p := &Profiler{}
	p.lazyInit()
	return p
}

func (p *Profiler) lazyInit() {
	if p.data == nil {
		p.data = make(map[string][]float64)
	}
	if p.timers == nil {
		p.timers = make(map[string]*Stopwatch)
	}
}

// SetOutput sets where summaries are printed. Nil restores os.Stdout.
func (p *Profiler) SetOutput(w io.Writer) {
	p.out = w
}

func (p *Profiler) writer() io.Writer {
	if p.out == nil {
		return os.Stdout
	}
	return p.out
}

// Initialize drops every timer and sample, then reserves room for numNames
// names with numEvents samples each.
func (p *Profiler) Initialize(numNames, numEvents int) {
	numNames = max(numNames, 0)
	numEvents = max(numEvents, 0)

	p.data = make(map[string][]float64, numNames)
	p.timers = make(map[string]*Stopwatch, numNames)
	p.prealloc = make([][]float64, numNames)
	for i := range p.prealloc {
		p.prealloc[i] = make([]float64, 0, numEvents)
	}
	log.Debug(log.TimingMonitoring, "profiler reinitialized", "names", numNames, "events", numEvents)
}

// Reset forgets the samples and the stopwatch of name.
func (p *Profiler) Reset(name string) {
	delete(p.data, name)
	delete(p.timers, name)
}

// Start starts, or restarts, the stopwatch of name.
func (p *Profiler) Start(name string) {
	p.lazyInit()
	if sw, ok := p.timers[name]; ok {
		sw.ResetAndRead()
		return
	}
	sw := NewStopwatch()
	p.timers[name] = &sw
}

// Record appends the time elapsed since Start(name) to name's samples and
// returns it. The stopwatch keeps running. Recording a name that was never
// started creates its stopwatch on the spot, so the value is close to zero.
func (p *Profiler) Record(name string) float64 {
	p.lazyInit()
	sw, ok := p.timers[name]
	if !ok {
		log.Trace(log.TimingMonitoring, "record before start", "name", name)
		fresh := NewStopwatch()
		sw = &fresh
		p.timers[name] = sw
	}
	elapsed := sw.Read()
	p.append(name, elapsed)
	return elapsed
}

// AddData appends an externally measured value to name's samples.
func (p *Profiler) AddData(name string, datum float64) {
	p.lazyInit()
	p.append(name, datum)
}

func (p *Profiler) append(name string, v float64) {
	samples, ok := p.data[name]
	if !ok && len(p.prealloc) > 0 {
		last := len(p.prealloc) - 1
		samples = p.prealloc[last]
		p.prealloc = p.prealloc[:last]
	}
	p.data[name] = append(samples, v)
}

// Data returns a copy of name's samples in recording order.
func (p *Profiler) Data(name string) []float64 {
	return slices.Clone(p.data[name])
}

// Names returns every name holding samples, sorted.
func (p *Profiler) Names() []string {
	names := make([]string, 0, len(p.data))
	for name := range p.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Summary aggregates name's samples. The bool is false if name has none.
func (p *Profiler) Summary(name string) (Summary, bool) {
	samples, ok := p.data[name]
	if !ok {
		return Summary{Name: name}, false
	}
	return Summarize(name, samples), true
}

func (p *Profiler) PrintSingleSummary(name string) {
	w := p.writer()
	box := strings.Repeat("=", len(name)+2)
	fmt.Fprintf(w, " .%s. \n", box)
	fmt.Fprintf(w, "|| %s || Summary :\n", name)
	fmt.Fprintf(w, " '%s' \n", box)

	s, ok := p.Summary(name)
	if !ok || s.Count == 0 {
		fmt.Fprintf(w, "%s never called\n\n", name)
		return
	}
	fmt.Fprintf(w, "total time : %f s\n", s.Sum)
	fmt.Fprintf(w, "called %d times\n", s.Count)
	fmt.Fprintf(w, "min time   : %f s\n", s.Min)
	fmt.Fprintf(w, "max time   : %f s\n", s.Max)
	fmt.Fprintf(w, "average    : %f s\n", s.Mean)
	fmt.Fprintf(w, "std dev    : %f s\n", s.StdDev)
	fmt.Fprintf(w, "\n")
}

// PrintGroupSummary prints one condensed row per name, in the given order.
// Names starting with "~~~" print a separator row.
func (p *Profiler) PrintGroupSummary(names []string) {
	w := p.writer()
	fmt.Fprintf(w, " .=======================. \n")
	fmt.Fprintf(w, "||    Profile Summary    ||\n")
	fmt.Fprintf(w, " '=======================' \n")

	labelLen := 8
	for _, name := range names {
		if !strings.HasPrefix(name, separatorPrefix) {
			labelLen = max(labelLen, len(name)+2)
		}
	}
	fmt.Fprintf(w, "%-*s %16s %16s %16s\n", labelLen, "Label", "tot time (s)", "num_calls", "avg time (s)")
	separator := strings.Repeat("~", labelLen) + strings.Repeat(" "+strings.Repeat("~", 16), 3)

	for _, name := range names {
		if strings.HasPrefix(name, separatorPrefix) {
			fmt.Fprintln(w, separator)
			continue
		}
		s, _ := p.Summary(name)
		fmt.Fprintf(w, "%-*s %16f %16d %16f\n", labelLen, name, s.Sum, s.Count, s.Mean)
	}
	fmt.Fprintf(w, "\n")
}
