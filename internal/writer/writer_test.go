package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/reader"
	"github.com/leengari/mini-frame/internal/testutil"
)

func buildTable(t *testing.T) *frame.Table {
	t.Helper()
	when := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q", s)
		}
		return v
	}
	tbl, err := frame.New(
		frame.NewIntColumn("numbers", []int64{1, 2, 3, 4}),
		frame.NewStringColumn("facts", []string{"a", "b", "b", "a"}),
		frame.NewBoolColumn("flags", []bool{true, false, false, true}),
		frame.NewFloatColumn("score", []float64{1.1, 1.2, 3.3}).AppendMissing(),
		frame.NewDateColumn("when", []time.Time{
			when("2024-01-10"), when("2024-03-05"), when("2024-06-30"), when("2024-12-01"),
		}),
	)
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}
	return tbl
}

// A written table re-read with matching configuration reconstructs the
// same values and types, missing marker included.
func TestWriteReadRoundTrip(t *testing.T) {
	tbl := buildTable(t)
	dest := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteDelimited(tbl, dest); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	back, err := reader.ReadDelimited(dest, reader.DefaultConfig())
	testutil.AssertNoError(t, err, "re-read")

	if !back.Equal(tbl) {
		t.Errorf("round-tripped table differs from the original\nwrote:\n%s\nread:\n%s", tbl, back)
	}
}

// The header row is written even when no data rows exist.
func TestWriteHeaderAlways(t *testing.T) {
	tbl, err := frame.New(
		frame.NewIntColumn("numbers", nil),
		frame.NewStringColumn("facts", nil),
	)
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteDelimited(tbl, dest); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	content, err := os.ReadFile(dest)
	testutil.AssertNoError(t, err, "read back")
	if string(content) != "numbers,facts\n" {
		t.Errorf("unexpected content: %q", string(content))
	}
}

func TestWriteDoesNotLeaveTempOnFailure(t *testing.T) {
	tbl := buildTable(t)
	dir := t.TempDir()

	// Destination inside a non-existent directory fails at temp creation
	err := WriteDelimited(tbl, filepath.Join(dir, "no-such-dir", "out.csv"))
	testutil.AssertError(t, err, "unwritable destination")

	entries, readErr := os.ReadDir(dir)
	testutil.AssertNoError(t, readErr, "list dir")
	if len(entries) != 0 {
		t.Errorf("stray files left behind: %v", entries)
	}
}

func TestFilterSelectWrite(t *testing.T) {
	tbl := buildTable(t)
	dest := filepath.Join(t.TempDir(), "subset.csv")

	err := FilterSelectWrite(tbl, "facts == 'a' AND numbers > 2", []string{"numbers", "facts"}, dest)
	testutil.AssertNoError(t, err, "pipeline")

	back, err := reader.ReadDelimited(dest, reader.DefaultConfig())
	testutil.AssertNoError(t, err, "re-read")
	testutil.AssertRowCount(t, back.Len(), 1, "filtered rows")
	testutil.AssertColumnCount(t, back.Width(), 2, "projected columns")

	row, err := back.Row(0)
	testutil.AssertNoError(t, err, "row")
	if row["numbers"] != int64(4) || row["facts"] != "a" {
		t.Errorf("wrong surviving row: %v", row)
	}
}

func TestFilterSelectWriteKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.csv")
	original := "numbers,facts\n1,a\n2,b\n"
	if err := os.WriteFile(src, []byte(original), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := reader.ReadDelimited(src, reader.DefaultConfig())
	testutil.AssertNoError(t, err, "read source")

	dest := filepath.Join(dir, "output.csv")
	err = FilterSelectWrite(tbl, "numbers > 1", nil, dest)
	testutil.AssertNoError(t, err, "pipeline")

	// Source file is untouched
	content, err := os.ReadFile(src)
	testutil.AssertNoError(t, err, "re-read source")
	if string(content) != original {
		t.Errorf("source file modified")
	}
}

func TestFilterSelectWriteEmptyPredicateKeepsRows(t *testing.T) {
	tbl := buildTable(t)
	dest := filepath.Join(t.TempDir(), "all.csv")

	err := FilterSelectWrite(tbl, "", []string{"facts"}, dest)
	testutil.AssertNoError(t, err, "pipeline without predicate")

	back, err := reader.ReadDelimited(dest, reader.DefaultConfig())
	testutil.AssertNoError(t, err, "re-read")
	testutil.AssertRowCount(t, back.Len(), tbl.Len(), "all rows kept")
}
