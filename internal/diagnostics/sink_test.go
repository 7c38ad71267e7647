package diagnostics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_AppendsTimestampedLines(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	sink.Logf("OK %s: id_number=%d", "GENGARITE", 6000)
	sink.Logf("DONE registration")

	data, err := os.ReadFile(filepath.Join(dir, RegisterFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "OK GENGARITE: id_number=6000"))
	assert.NotEqual(t, "OK GENGARITE: id_number=6000", lines[0], "line should carry a timestamp prefix")
}

func TestFileSink_ErrorWritesTrace(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	sink.Error(errors.New("bag full"), "autoequip.deposit")
	sink.Error(nil, "ignored")

	data, err := os.ReadFile(filepath.Join(dir, ErrorFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "autoequip.deposit")
	assert.Contains(t, string(data), "bag full")
	assert.Contains(t, string(data), "goroutine")
	assert.NotContains(t, string(data), "ignored")
}

func TestFileSink_MissingDirectoryIsSwallowed(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "does", "not", "exist"))

	assert.NotPanics(t, func() {
		sink.Boot("Loaded")
		sink.Dump(ItemDebugFile, []string{"x"})
	})
}

func TestFileSink_DumpReplaces(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	sink.Dump(ItemDebugFile, []string{"first"})
	sink.Dump(ItemDebugFile, []string{"second", "third"})

	data, err := os.ReadFile(filepath.Join(dir, ItemDebugFile))
	require.NoError(t, err)
	assert.Equal(t, "second\nthird\n", string(data))
}
