package testutil

import (
	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/errors"
)

// RegisterSamples registers factories for every sample component so that
// definition files can reference them by kind.
func RegisterSamples(reg *component.Registry) error {
	factories := map[string]component.Factory{
		"add_fixed_value": func(params map[string]any) (component.Component, error) {
			c := NewAddFixedValue()
			if add, ok, err := intParam(params, "add"); err != nil {
				return nil, err
			} else if ok {
				c.Add = add
			}
			return c, nil
		},
		"double": func(map[string]any) (component.Component, error) { return Double{}, nil },
		"parity": func(map[string]any) (component.Component, error) { return Parity{}, nil },
		"threshold": func(params map[string]any) (component.Component, error) {
			c := NewThreshold()
			if threshold, ok, err := intParam(params, "threshold"); err != nil {
				return nil, err
			} else if ok {
				c.Threshold = threshold
			}
			return c, nil
		},
		"remainder": func(params map[string]any) (component.Component, error) {
			divisor, ok, err := intParam(params, "divisor")
			if err != nil {
				return nil, err
			}
			if !ok || divisor < 1 {
				return nil, errors.InvalidInput("remainder requires a positive divisor param")
			}
			return &Remainder{Divisor: divisor}, nil
		},
		"repeat": func(params map[string]any) (component.Component, error) {
			outputs, err := stringsParam(params, "outputs")
			if err != nil {
				return nil, err
			}
			if len(outputs) == 0 {
				return nil, errors.InvalidInput("repeat requires a non-empty outputs param")
			}
			return &Repeat{Outputs: outputs}, nil
		},
		"sum":         func(map[string]any) (component.Component, error) { return Sum{}, nil },
		"subtract":    func(map[string]any) (component.Component, error) { return Subtract{}, nil },
		"greet":       func(map[string]any) (component.Component, error) { return NewGreet(), nil },
		"accumulate":  func(map[string]any) (component.Component, error) { return &Accumulate{}, nil },
		"self_loop":   func(map[string]any) (component.Component, error) { return SelfLoop{}, nil },
		"multiplexer": func(map[string]any) (component.Component, error) { return Multiplexer{}, nil },
		"hello":       func(map[string]any) (component.Component, error) { return Hello{}, nil },
		"fstring": func(params map[string]any) (component.Component, error) {
			template, _ := params["template"].(string)
			variables, err := stringsParam(params, "variables")
			if err != nil {
				return nil, err
			}
			return &FString{Template: template, Variables: variables}, nil
		},
		"text_splitter":      func(map[string]any) (component.Component, error) { return TextSplitter{}, nil },
		"string_list_joiner": func(map[string]any) (component.Component, error) { return StringListJoiner{}, nil },
	}
	for kind, factory := range factories {
		if err := reg.Register(kind, factory); err != nil {
			return err
		}
	}
	return nil
}

func intParam(params map[string]any, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case float64:
		return int(v), true, nil
	default:
		return 0, false, errors.InvalidInput("param %q must be an integer, got %T", key, raw)
	}
}

func stringsParam(params map[string]any, key string) ([]string, error) {
	raw, ok := params[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.InvalidInput("param %q must hold strings, got %T", key, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.InvalidInput("param %q must be a string list, got %T", key, raw)
	}
}
