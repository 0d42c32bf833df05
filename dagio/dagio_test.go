package dagio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtsched/dagsched/dagio"
	"github.com/rtsched/dagsched/schedlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDAG = `
nodes:
  - id: 0
    params: {execution_time: 3, period: 10}
  - id: 1
    params: {execution_time: 2}
edges:
  - from: 0
    to: 1
`

const cyclicDAG = `
nodes:
  - id: 0
    params: {execution_time: 1, period: 5}
  - id: 1
    params: {execution_time: 1}
edges:
  - from: 0
    to: 1
  - from: 1
    to: 0
`

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDAGNormalizesImplicitDeadline(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.yaml", sampleDAG)

	d, warnings, err := dagio.LoadDAG(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	deadline, ok, err := d.GetEndToEndDeadline()
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 10, deadline)
}

func TestLoadDAGRejectsCycles(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "cyclic.yaml", cyclicDAG)

	_, _, err := dagio.LoadDAG(path)
	assert.Error(t, err)
}

func TestLoadDAGSetSortsByFileName(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "b.yaml", strings.Replace(sampleDAG, "period: 10", "period: 20", 1))
	writeTempFile(t, dir, "a.yaml", sampleDAG)

	dagSet, _, err := dagio.LoadDAGSet(dir)
	require.NoError(t, err)
	require.Len(t, dagSet, 2)

	first, err := dagSet[0].HeadPeriod()
	require.NoError(t, err)
	assert.EqualValues(t, 10, first)
	second, err := dagSet[1].HeadPeriod()
	require.NoError(t, err)
	assert.EqualValues(t, 20, second)
}

func TestLoadDAGSetEmptyDirErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := dagio.LoadDAGSet(dir)
	assert.ErrorIs(t, err, dagio.ErrNoDAGFiles)
}

func TestWriteDocumentRoundTrips(t *testing.T) {
	dir := t.TempDir()
	doc := &schedlog.Document{RunID: dagio.NewRunID(), Result: true}

	path, err := dagio.WriteDocument(doc, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), doc.RunID)
}
