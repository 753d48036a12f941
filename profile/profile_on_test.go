//go:build benchprofile

package profile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Only compiles/runs with the tag: go test -tags=benchprofile ./profile
func TestEnabledBuildRecords(t *testing.T) {
	require.True(t, Enabled)
	Reinitialize(4, 8)

	Start("solve")
	v := Record("solve")
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Equal(t, []float64{v}, Data("solve"))

	AddData("count", 5)
	assert.Equal(t, []float64{5}, Data("count"))

	Reset("solve")
	assert.Empty(t, Data("solve"))
	assert.Equal(t, []float64{5}, Data("count"))

	Reinitialize(1, 1)
	assert.Empty(t, Data("count"))
}

func TestEnabledBuildPrints(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	Reinitialize(2, 2)

	AddData("load", 1)
	PrintSingleSummary("load")
	PrintGroupSummary([]string{"load"})
	assert.Contains(t, buf.String(), "|| load || Summary :")
	assert.Contains(t, buf.String(), "Profile Summary")
}
