package reader

import (
	"fmt"

	"github.com/leengari/mini-frame/internal/frame"
	"github.com/leengari/mini-frame/internal/validation"
)

// coerce parses a single raw token as the given type.
func coerce(token string, dtype frame.DType, cfg ReadConfig) (interface{}, error) {
	switch dtype {
	case frame.TypeInt:
		return validation.ParseInt(token)
	case frame.TypeFloat:
		return validation.ParseFloat(token)
	case frame.TypeBool:
		return validation.ParseBool(token)
	case frame.TypeDate:
		return validation.ParseDate(token, cfg.DateFormat)
	case frame.TypeString, frame.TypeCategorical:
		return token, nil
	}
	return nil, fmt.Errorf("unsupported column type %s", dtype)
}

// buildColumn turns one column of raw tokens into a typed Column. With an
// override the target type is fixed and a single bad value fails the whole
// read; otherwise the inference ladder runs and a bad value just demotes
// the column, with STRING as the universal fallback.
func buildColumn(name string, raw []string, cfg ReadConfig) (frame.Column, error) {
	missing := make([]bool, len(raw))
	for i, token := range raw {
		missing[i] = cfg.isMissing(token)
	}

	if override, ok := cfg.TypeOverrides[name]; ok {
		return coerceColumn(name, raw, missing, override, cfg)
	}

	for _, dtype := range cfg.InferenceOrder {
		col, err := coerceColumn(name, raw, missing, dtype, cfg)
		if err == nil {
			return col, nil
		}
	}

	// Universal fallback
	return coerceColumn(name, raw, missing, frame.TypeString, cfg)
}

func coerceColumn(name string, raw []string, missing []bool, dtype frame.DType, cfg ReadConfig) (frame.Column, error) {
	values := make([]interface{}, len(raw))
	for i, token := range raw {
		if missing[i] {
			continue
		}
		v, err := coerce(token, dtype, cfg)
		if err != nil {
			return frame.Column{}, &frame.TypeCoercionError{Row: i, Column: name, Value: token, Target: dtype}
		}
		values[i] = v
	}
	return frame.NewColumn(name, dtype, values, missing)
}
