package filelog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/colorfulnotion/arcutil/arcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var headerRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(b), "\n"), "every line is terminated")
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestNewWritesHeaderAndMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := New(path)
	require.NoError(t, err)
	defer l.Close()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, headerRe, lines[0])

	require.NoError(t, l.LogMessage("hello"))
	lines = readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "hello", lines[1])
	assert.Equal(t, path, l.Path())
}

func TestNewTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("old\nstuff\n"), 0o644))

	l, err := New(path)
	require.NoError(t, err)
	defer l.Close()
	assert.Len(t, readLines(t, path), 1)
}

func TestNewOpenFailure(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "run.log"))
	require.ErrorIs(t, err, arcerrors.ErrLogOpen)
	assert.Equal(t, "L1", arcerrors.GetErrorCode(err))
}

func TestLogFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := New(path)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Log("iteration ", 3, " cost ", 1.5))
	require.NoError(t, l.Logf("%s=%d", "n", 7))
	require.NoError(t, l.LogIf(false, "skipped"))
	require.NoError(t, l.LogIf(true, "kept"))

	assert.Equal(t, []string{"iteration 3 cost 1.5", "n=7", "kept"}, readLines(t, path)[1:])
}

func TestCloneSharesFileWithoutSecondHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	orig, err := New(path)
	require.NoError(t, err)
	defer orig.Close()

	clone, err := orig.Clone()
	require.NoError(t, err)
	defer clone.Close()

	require.NoError(t, orig.LogMessage("from original"))
	require.NoError(t, clone.LogMessage("from clone"))
	require.NoError(t, orig.LogMessage("original again"))

	lines := readLines(t, path)
	require.Len(t, lines, 4)
	assert.Regexp(t, headerRe, lines[0])
	assert.Equal(t, []string{"from original", "from clone", "original again"}, lines[1:])
}

func TestMoveClosesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	src, err := New(path)
	require.NoError(t, err)
	require.NoError(t, src.LogMessage("before"))

	dst, err := src.Move()
	require.NoError(t, err)
	defer dst.Close()

	require.ErrorIs(t, src.LogMessage("lost"), arcerrors.ErrLogClosed)
	require.NoError(t, dst.LogMessage("after"))
	assert.Equal(t, path, dst.Path())

	lines := readLines(t, path)
	assert.Equal(t, []string{"before", "after"}, lines[1:])

	// a moved-from logger still knows its path and can be cloned
	again, err := src.Clone()
	require.NoError(t, err)
	defer again.Close()
	require.NoError(t, again.LogMessage("revived"))
	assert.Equal(t, "revived", readLines(t, path)[3])
}

func TestCopyFrom(t *testing.T) {
	dir := t.TempDir()
	a, err := New(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	defer a.Close()
	b, err := New(filepath.Join(dir, "b.log"))
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.CopyFrom(a))
	require.NoError(t, b.CopyFrom(b))
	require.NoError(t, b.LogMessage("into a"))
	require.NoError(t, a.LogMessage("also a"))

	assert.Equal(t, []string{"into a", "also a"}, readLines(t, filepath.Join(dir, "a.log"))[1:])
	assert.Len(t, readLines(t, filepath.Join(dir, "b.log")), 1)
}

func TestCloseIsIdempotent(t *testing.T) {
	l, err := New(filepath.Join(t.TempDir(), "run.log"))
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	require.ErrorIs(t, l.Log("x"), arcerrors.ErrLogClosed)
}
