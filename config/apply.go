package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-args/args"
)

// Key returns the name an entry is looked up by: its long id, or its short
// id when it has no long one.
func Key(a args.Arg) string {
	if a.Long() != "" {
		return a.Long()
	}
	return string(a.Short())
}

// EnvSource collects the environment variables named by entries' Env
// settings. Values for multi entries are split on commas.
func EnvSource(entries []args.Arg, lookup func(string) (string, bool)) map[string]any {
	data := make(map[string]any)
	for _, a := range entries {
		if a.EnvVar() == "" {
			continue
		}
		raw, ok := lookup(a.EnvVar())
		if !ok {
			continue
		}
		if !a.Multi() {
			data[Key(a)] = raw
			continue
		}
		parts := strings.Split(raw, ",")
		values := make([]any, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		data[Key(a)] = values
	}
	return data
}

// Apply assigns resolved values to every registered entry that is still
// undefined, so anything given on the command line always wins. Every
// failure is collected and returned joined.
func Apply(p *args.Parser, resolved map[string]any) error {
	var errs []error
	for _, a := range p.Registry().All() {
		if a.IsDefined() {
			continue
		}
		v, ok := resolved[Key(a)]
		if !ok || v == nil {
			continue
		}
		if err := applyValue(a, v); err != nil {
			errs = append(errs, fmt.Errorf("config %s: %w", Key(a), err))
		}
	}
	return errors.Join(errs...)
}

func applyValue(a args.Arg, v any) error {
	list, isList := v.([]any)
	if !isList {
		raw, err := toRaw(v)
		if err != nil {
			return err
		}
		return a.SetValue(raw)
	}
	if !a.Multi() {
		return fmt.Errorf("%s takes a single value, got a list of %d", a, len(list))
	}

	var errs []error
	for _, item := range list {
		raw, err := toRaw(item)
		if err == nil {
			err = a.SetValue(raw)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// toRaw renders a decoded value the way it would be typed on the command line.
func toRaw(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}
