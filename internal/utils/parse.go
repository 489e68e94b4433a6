package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Table is a decoded TOML table, used when a file is read key by key.
type Table map[string]any

// DecodeTOMLFile decodes path into v and returns the keys v had no field for.
func DecodeTOMLFile(path string, v any) (unknown []string, err error) {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// ReadTOMLTable decodes path without a target type, so a value of the wrong
// type only costs that one key.
func ReadTOMLTable(path string) (Table, error) {
	var t Table
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return t, nil
}

// Section returns the sub-table name, or nil when it is missing or not a
// table. Lookups on a nil Table find nothing.
func (t Table) Section(name string) Table {
	sub, _ := t[name].(map[string]any)
	return sub
}

// Assign stores t[key] into dst when it holds a T and reports whether it did.
// A present key of another type is logged and left out.
func Assign[T any](t Table, key string, dst *T) bool {
	raw, ok := t[key]
	if !ok {
		return false
	}
	v, ok := raw.(T)
	if !ok {
		log.Warnf("Config key %q has type %T, want %T; keeping default", key, raw, *dst)
		return false
	}
	*dst = v
	return true
}

// AssignInt is Assign for int fields; TOML integers decode as int64.
func AssignInt(t Table, key string, dst *int) bool {
	var v int64
	if !Assign(t, key, &v) {
		return false
	}
	*dst = int(v)
	return true
}
