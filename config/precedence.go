// Package config fills parser entries the command line left undefined from
// lower-priority layers: built-in defaults, a config file and the environment.
package config

import "sort"

// SourceType represents the type of configuration source. Higher values win.
type SourceType int

const (
	SourceDefaults SourceType = iota
	SourceFile
	SourceEnv
)

func (s SourceType) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// Source is one layer of values keyed by entry name.
type Source struct {
	Type SourceType
	Data map[string]any
}

// Precedence merges sources so that higher SourceTypes override lower ones.
type Precedence struct {
	sources []Source
}

// NewPrecedence creates an empty precedence chain.
func NewPrecedence() *Precedence {
	return &Precedence{sources: make([]Source, 0, 3)}
}

// AddSource adds a layer. Sources of the same type apply in insertion order.
func (pm *Precedence) AddSource(sourceType SourceType, data map[string]any) *Precedence {
	pm.sources = append(pm.sources, Source{Type: sourceType, Data: data})
	return pm
}

// Resolve returns the merged values with nested maps flattened to dotted
// keys, e.g. {"a":{"b":1}} becomes {"a.b":1}.
func (pm *Precedence) Resolve() map[string]any {
	ordered := make([]Source, len(pm.sources))
	copy(ordered, pm.sources)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Type < ordered[j].Type })

	result := make(map[string]any)
	for _, source := range ordered {
		flattenMap("", source.Data, result)
	}
	return result
}

func flattenMap(prefix string, src, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenMap(key, sub, dst)
			continue
		}
		dst[key] = v
	}
}
