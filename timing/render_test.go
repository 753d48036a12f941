package timing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeNestsByPrefix(t *testing.T) {
	p := NewProfiler()
	p.AddData("plan", 3)
	p.AddData("plan/collision", 1)
	p.AddData("plan/collision", 1)
	p.AddData("plan/smooth", 0.5)
	p.AddData("io", 0.25)

	out := p.Tree([]string{"plan", "plan/collision", "plan/smooth", "~~~", "io"})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "profile", lines[0])
	assert.Contains(t, lines[1], "[1 calls]")
	assert.Contains(t, lines[1], "plan  total 3.000000s")
	assert.Contains(t, lines[2], "[2 calls]")
	assert.Contains(t, lines[2], "collision  total 2.000000s avg 1.000000s")
	assert.Contains(t, lines[3], "smooth")
	assert.Contains(t, lines[4], "io  total 0.250000s")

	// children are indented under their branch
	assert.Greater(t, strings.Index(lines[2], "collision"), strings.Index(lines[1], "plan"))
}

func TestTreeDefaultsToAllNames(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler()
	p.SetOutput(&buf)
	p.AddData("b/x", 1)
	p.AddData("a", 1)

	p.PrintTree(nil)
	out := buf.String()
	assert.Contains(t, out, "a  total")
	assert.Contains(t, out, "x  total")
	assert.Less(t, strings.Index(out, "a  total"), strings.Index(out, "x  total"))
}

func TestWriteChart(t *testing.T) {
	p := NewProfiler()
	p.AddData("solve", 0.125)
	p.AddData("solve", 0.25)
	p.AddData("load", 1.5)

	var buf bytes.Buffer
	require.NoError(t, p.WriteChart(&buf, nil))
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Profile samples")
	assert.Contains(t, html, "solve")
	assert.Contains(t, html, "load")
}
