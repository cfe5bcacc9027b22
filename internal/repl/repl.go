package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/predicate"
	"github.com/leengari/mini-frame/internal/reader"
	"github.com/leengari/mini-frame/internal/writer"
)

// Session holds the interactive state: the table as originally loaded and
// the current derivation of it. Every command that transforms produces a
// new table; reset goes back to the loaded one.
type Session struct {
	loaded  *frame.Table
	current *frame.Table
	out     io.Writer
}

func NewSession(out io.Writer) *Session {
	return &Session{out: out}
}

// Start runs the interactive loop. An optional initial file is loaded
// before the first prompt.
func Start(initialPath string) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to mini-frame")
	fmt.Println("Commands: load, sheet, show, cols, filter, select, write, reset. Type 'exit' or '\\q' to quit.")

	s := NewSession(os.Stdout)
	if initialPath != "" {
		if err := s.Execute("load " + initialPath); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		if err := s.Execute(line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// Execute runs a single session command.
func (s *Session) Execute(line string) error {
	cmd, rest := splitCommand(line)

	switch cmd {
	case "load":
		if rest == "" {
			return fmt.Errorf("usage: load <path>")
		}
		t, err := reader.ReadDelimited(rest, reader.DefaultConfig())
		if err != nil {
			return err
		}
		s.loaded, s.current = t, t
		fmt.Fprintf(s.out, "loaded %d rows, %d columns from %s\n", t.Len(), t.Width(), rest)
		return nil

	case "sheet":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return fmt.Errorf("usage: sheet <path> [sheet-name]")
		}
		sel := reader.Sheet{}
		if len(fields) > 1 {
			sel = reader.SheetByName(fields[1])
		}
		t, err := reader.ReadSpreadsheet(fields[0], sel, reader.DefaultConfig())
		if err != nil {
			return err
		}
		s.loaded, s.current = t, t
		fmt.Fprintf(s.out, "loaded %d rows, %d columns from %s\n", t.Len(), t.Width(), fields[0])
		return nil

	case "show":
		if err := s.requireTable(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.current.String())
		return nil

	case "cols":
		if err := s.requireTable(); err != nil {
			return err
		}
		for i, c := range s.current.Columns() {
			fmt.Fprintf(s.out, "  [%d] %s (%s)\n", i, c.Name, c.Type)
		}
		return nil

	case "filter":
		if err := s.requireTable(); err != nil {
			return err
		}
		if rest == "" {
			return fmt.Errorf("usage: filter <predicate>")
		}
		t, err := predicate.Filter(s.current, rest)
		if err != nil {
			return err
		}
		s.current = t
		fmt.Fprintf(s.out, "%d rows remain\n", t.Len())
		return nil

	case "select":
		if err := s.requireTable(); err != nil {
			return err
		}
		if rest == "" {
			return fmt.Errorf("usage: select <col1,col2,...>")
		}
		names := strings.Split(rest, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		t, err := s.current.SelectColumns(names...)
		if err != nil {
			return err
		}
		s.current = t
		fmt.Fprintf(s.out, "%d columns remain\n", t.Width())
		return nil

	case "write":
		if err := s.requireTable(); err != nil {
			return err
		}
		if rest == "" {
			return fmt.Errorf("usage: write <path>")
		}
		if err := writer.WriteDelimited(s.current, rest); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "wrote %d rows to %s\n", s.current.Len(), rest)
		return nil

	case "reset":
		if err := s.requireTable(); err != nil {
			return err
		}
		s.current = s.loaded
		fmt.Fprintf(s.out, "back to %d rows, %d columns\n", s.current.Len(), s.current.Width())
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Current returns the session's current table, nil before the first load.
func (s *Session) Current() *frame.Table {
	return s.current
}

func (s *Session) requireTable() error {
	if s.current == nil {
		return fmt.Errorf("no table loaded - use 'load <path>' first")
	}
	return nil
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return cmd, ""
	}
	return cmd, strings.TrimSpace(parts[1])
}
