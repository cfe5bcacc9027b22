package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/logging"
	"github.com/leengari/mini-frame/internal/predicate"
	"github.com/leengari/mini-frame/internal/reader"
	"github.com/leengari/mini-frame/internal/writer"
)

// Scripted walk through the full workflow: construct a table from columns,
// trip the shape check, read a delimited file, filter and project, write
// the result back out.
func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting mini-frame demo...")

	frame.RegisterObserver(frame.NewLoggingObserver())

	// 1. Columns of unequal length must be rejected
	v1 := frame.NewIntColumn("v1", []int64{1, 2, 3, 4})
	v2 := frame.NewStringColumn("v2", []string{"a", "b", "c", "d"})
	v3 := frame.NewBoolColumn("v3", []bool{true, false, false, true})
	v4 := frame.NewFloatColumn("v4", []float64{1.1, 1.2, 3.3})

	if _, err := frame.New(v1, v2, v3, v4); err != nil {
		slog.Info("construction rejected as expected", "error", err)
	}

	// 2. Appending the missing marker to v4 fixes the shape
	t, err := frame.New(v1, v2, v3, v4.AppendMissing())
	if err != nil {
		slog.Error("table construction failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	slog.Info("table constructed", "rows", t.Len(), "columns", t.Width(), "frame_id", t.Lineage().ID)

	// 3. Read a delimited file
	dir, err := os.MkdirTemp("", "mini-frame-demo")
	if err != nil {
		slog.Error("temp dir", "error", err)
		closeFn()
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "observations.csv")
	sample := "numbers,facts,flags\n1,a,true\n2,b,false\n3,b,false\n4,a,true\n"
	if err := os.WriteFile(src, []byte(sample), 0o644); err != nil {
		slog.Error("write sample", "error", err)
		closeFn()
		os.Exit(1)
	}

	obs, err := reader.ReadDelimited(src, reader.DefaultConfig())
	if err != nil {
		slog.Error("read failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	slog.Info("read observations", "rows", obs.Len(), "columns", obs.Names())

	// 4. Filter and project
	subset, err := predicate.Filter(obs, "facts == 'a' AND numbers > 2")
	if err != nil {
		slog.Error("filter failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	slog.Info("filtered", "rows", subset.Len())

	// 5. Write the filtered projection
	dest := filepath.Join(dir, "subset.csv")
	if err := writer.FilterSelectWrite(obs, "facts == 'a'", []string{"numbers", "facts"}, dest); err != nil {
		slog.Error("write failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	slog.Info("wrote subset", "destination", dest)

	slog.Info("Demo complete - all operations exercised")
}
