package reader

import (
	"github.com/leengari/mini-frame/internal/frame"
)

// ReadConfig enumerates everything a read call can be told. The zero value
// is not useful; start from DefaultConfig.
type ReadConfig struct {
	Delimiter      rune                   // field separator, default ','
	HasHeader      bool                   // first row after skipped lines names the columns
	SkipLines      int                    // raw lines dropped before header/data
	ColumnNames    []string               // explicit names, override the header row
	TypeOverrides  map[string]frame.DType // per-column type, bypasses inference
	MissingTokens  []string               // raw tokens mapped to the missing marker
	DateFormat     string                 // Go layout for DATE parsing
	InferenceOrder []frame.DType          // demotion ladder, narrowest first
}

// DefaultConfig returns the conventional configuration: comma-separated,
// header row present, empty string and NA as missing, ISO dates, and the
// integer -> float -> boolean -> date ladder with string as fallback.
func DefaultConfig() ReadConfig {
	return ReadConfig{
		Delimiter:     ',',
		HasHeader:     true,
		MissingTokens: []string{"", "NA"},
		DateFormat:    frame.DefaultDateFormat,
		InferenceOrder: []frame.DType{
			frame.TypeInt,
			frame.TypeFloat,
			frame.TypeBool,
			frame.TypeDate,
		},
	}
}

func (cfg ReadConfig) isMissing(token string) bool {
	for _, m := range cfg.MissingTokens {
		if token == m {
			return true
		}
	}
	return false
}

// Sheet selects a spreadsheet sheet by name or 0-based index. The zero
// value selects the first sheet.
type Sheet struct {
	Name  string
	Index int
}

// SheetByName selects a sheet by its name.
func SheetByName(name string) Sheet {
	return Sheet{Name: name}
}

// SheetByIndex selects a sheet by 0-based position.
func SheetByIndex(i int) Sheet {
	return Sheet{Index: i}
}
