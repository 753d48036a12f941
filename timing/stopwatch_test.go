package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchRead(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(5 * time.Millisecond)
	first := sw.Read()
	second := sw.Read()
	assert.GreaterOrEqual(t, first, 0.005)
	assert.GreaterOrEqual(t, second, first, "read must not reset")
	assert.GreaterOrEqual(t, sw.Elapsed(), 5*time.Millisecond)
}

func TestStopwatchResetAndReadReturnsClosedInterval(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(20 * time.Millisecond)
	first := sw.ResetAndRead()
	second := sw.ResetAndRead()

	assert.GreaterOrEqual(t, first, 0.020)
	assert.GreaterOrEqual(t, second, 0.0)
	assert.Less(t, second, first, "second interval is measured from the reset, not the construction")
}

func TestStopwatchCopyIsIndependent(t *testing.T) {
	a := NewStopwatch()
	time.Sleep(10 * time.Millisecond)
	b := a
	b.ResetAndRead()
	assert.Greater(t, a.Read(), b.Read())
}

func TestStopwatchDo(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, sw.Do(Read), 0.010)
	assert.GreaterOrEqual(t, sw.Do(Reset), 0.010)
	assert.Less(t, sw.Do(Read), 0.010)
}

func TestGlobalStopwatch(t *testing.T) {
	GlobalStopwatch(Reset)
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, GlobalStopwatch(Read), 0.002)
}
