package frames_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blast-analytics-marketing/blast-developer-tools/frames"
)

func sampleFrame(t *testing.T) *frames.Frame {
	t.Helper()
	f := frames.New("id", "name", "amount", "active", "signup_date", "updated_at")
	require.NoError(t, f.Append("1", "alice", "10.50", "True", "2022-01-01", "2022-01-01 10:30:00"))
	require.NoError(t, f.Append("2.0", "bob", "x", "0", "01/02/2022", "2022-01-02T08:00:00Z"))
	return f
}

func sampleSchema() frames.Schema {
	return frames.Schema{
		"id":          frames.Int,
		"name":        frames.String,
		"amount":      frames.Float,
		"active":      frames.Bool,
		"signup_date": frames.Date,
		"updated_at":  frames.Timestamp,
	}
}

func TestFrame_Append(t *testing.T) {
	f := frames.New("a", "b")
	require.NoError(t, f.Append("1", "2"))
	require.Error(t, f.Append("1"))
	require.Equal(t, 1, f.Len())
}

func TestFrame_Column(t *testing.T) {
	f := sampleFrame(t)
	require.Equal(t, []string{"alice", "bob"}, f.Column("name"))
	require.Nil(t, f.Column("missing"))
	require.Equal(t, -1, f.Col("missing"))
}

func TestFrame_Coerce(t *testing.T) {
	f := sampleFrame(t)
	f.Coerce(sampleSchema())

	require.Equal(t, []string{"1", "2"}, f.Column("id"))
	require.Equal(t, []string{"alice", "bob"}, f.Column("name"))
	require.Equal(t, []string{"10.5", ""}, f.Column("amount"))
	require.Equal(t, []string{"true", "false"}, f.Column("active"))
	require.Equal(t, []string{"2022-01-01", ""}, f.Column("signup_date"))
	require.Equal(t, []string{"2022-01-01 10:30:00", "2022-01-02 08:00:00"}, f.Column("updated_at"))

	// every coerced frame is stamped with the pull timestamp
	pullDates := f.Column(frames.PullDateColumn)
	require.Len(t, pullDates, 2)
	require.NotEmpty(t, pullDates[0])
	require.Equal(t, pullDates[0], pullDates[1])
}

func TestFrame_CoerceUnknownColumnsUntouched(t *testing.T) {
	f := frames.New("mystery")
	require.NoError(t, f.Append("raw value"))
	f.Coerce(frames.Schema{})
	require.Equal(t, []string{"raw value"}, f.Column("mystery"))
}

func TestSchema_Columns(t *testing.T) {
	s := sampleSchema()
	require.Equal(t, []string{"amount"}, s.Columns(frames.Float))
	require.Equal(t, []string{"id"}, s.Columns(frames.Int))
	require.Empty(t, s.Columns(frames.DType("unknown")))
}

func TestUnion(t *testing.T) {
	merged := frames.Union(
		frames.Schema{"a": frames.Int, "b": frames.String},
		frames.Schema{"b": frames.Bool, "c": frames.Float},
	)
	require.Equal(t, frames.Schema{"a": frames.Int, "b": frames.Bool, "c": frames.Float}, merged)
}

func TestDiff(t *testing.T) {
	require.Equal(t, []string{"a", "c"}, frames.Diff([]string{"c", "a", "b", "a"}, []string{"b", "d"}))
	require.Empty(t, frames.Diff([]string{"a"}, []string{"a"}))
	require.Equal(t, []int{1, 3}, frames.Diff([]int{3, 1, 2}, []int{2}))
}

func TestStagingTables(t *testing.T) {
	require.Len(t, frames.StagingTables("subfolder1"), 4)
	require.Len(t, frames.StagingTables("subfolder2"), 6)
	require.Nil(t, frames.StagingTables("unknown"))
	require.Equal(t, []string{"subfolder1", "subfolder2"}, frames.Groups())
}

func TestWriteCSV_FullQuoting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "data.csv")

	f := frames.New("id", "note")
	require.NoError(t, f.Append("1", `said "hi", left`))
	require.NoError(t, frames.WriteCSV(path, f))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, `"id","note"`, lines[0])
	require.Equal(t, `"1","said ""hi"", left"`, lines[1])
}

func TestWriteCSV_EmptyFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")

	err := frames.WriteCSV(path, frames.New("a"))
	require.ErrorIs(t, err, frames.ErrNoRows)
	require.NoFileExists(t, path)
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")

	f := frames.New("id", "name")
	require.NoError(t, f.Append("1", "alice"))
	require.NoError(t, f.Append("2", `bob "the builder"`))
	require.NoError(t, frames.WriteCSV(path, f))

	got, err := frames.ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, f.Columns, got.Columns)
	require.Equal(t, f.Rows, got.Rows)

	_, err = frames.ReadCSV(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}

func TestReadCSV_MissingHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := frames.ReadCSV(path)
	require.ErrorContains(t, err, "missing header")
}
