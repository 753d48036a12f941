package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/colorfulnotion/arcutil/arcerrors"
	"github.com/colorfulnotion/arcutil/config"
	"github.com/colorfulnotion/arcutil/filelog"
	"github.com/colorfulnotion/arcutil/log"
	"github.com/colorfulnotion/arcutil/timing"
)

// runner times commands into one profiler and, optionally, one file log.
type runner struct {
	prof   *timing.Profiler
	flog   *filelog.Logger
	output io.Writer // child stdout/stderr
}

func newRunner(prealloc config.Prealloc, logPath string, verbose bool) (*runner, error) {
	r := &runner{prof: timing.NewProfiler(), output: io.Discard}
	r.prof.Initialize(prealloc.Names, prealloc.Events)
	if verbose {
		r.output = os.Stderr
	}
	if logPath != "" {
		l, err := filelog.New(logPath)
		if err != nil {
			return nil, err
		}
		r.flog = l
	}
	return r, nil
}

func (r *runner) Close() error {
	if r.flog == nil {
		return nil
	}
	return r.flog.Close()
}

func (r *runner) note(format string, args ...any) error {
	if r.flog == nil {
		return nil
	}
	return r.flog.Logf(format, args...)
}

func (r *runner) exec(ctx context.Context, c config.Command) error {
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdout = r.output
	cmd.Stderr = r.output
	return cmd.Run()
}

// timeCommand runs c warmup times untimed, then runs times, recording each
// successful run under c.Name.
func (r *runner) timeCommand(ctx context.Context, c config.Command, runs, warmup int) error {
	for i := 0; i < warmup; i++ {
		if err := r.exec(ctx, c); err != nil {
			return fmt.Errorf("%w: %s warmup %d: %v", arcerrors.ErrCommandFailed, c.Name, i+1, err)
		}
	}
	for i := 0; i < runs; i++ {
		r.prof.Start(c.Name)
		if err := r.exec(ctx, c); err != nil {
			_ = r.note("%s run %d failed: %v", c.Name, i+1, err)
			return fmt.Errorf("%w: %s run %d: %v", arcerrors.ErrCommandFailed, c.Name, i+1, err)
		}
		elapsed := r.prof.Record(c.Name)
		log.Debug(log.CLIMonitoring, "run finished", "name", c.Name, "run", i+1, "seconds", elapsed)
		if err := r.note("%s run %d: %.6f s", c.Name, i+1, elapsed); err != nil {
			return err
		}
	}
	return nil
}

// report prints the summaries of names to w, then the tree and chart if asked.
func (r *runner) report(w io.Writer, names []string, tree bool, chartPath string) error {
	r.prof.SetOutput(w)
	if len(names) == 1 {
		r.prof.PrintSingleSummary(names[0])
	} else {
		r.prof.PrintGroupSummary(names)
	}
	if tree {
		r.prof.PrintTree(names)
	}
	if chartPath == "" {
		return nil
	}
	f, err := os.Create(chartPath)
	if err != nil {
		return err
	}
	if err := r.prof.WriteChart(f, names); err != nil {
		f.Close()
		return err
	}
	log.Info(log.CLIMonitoring, "chart written", "path", chartPath)
	return f.Close()
}
