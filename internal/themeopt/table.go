// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package themeopt holds the canonical theme option tables, default values,
// presets, validation rules and message templates used by theme settings.
//
// Everything in this package is built once at init and never mutated, so all
// functions are safe for concurrent use without locking.
package themeopt

// Table is an immutable mapping from a symbolic option key to its
// presentation value. Keys keep their declaration order for admin listings.
type Table struct {
	name     string
	fallback string
	entries  map[string]string
	order    []string
}

// newTable builds a table from alternating key/value pairs.
// It panics on an odd number of arguments, a duplicate key or a fallback
// that is not one of the keys.
func newTable(name, fallback string, pairs ...string) *Table {
	if len(pairs)%2 != 0 {
		panic("themeopt: odd number of pairs for table " + name)
	}
	t := &Table{
		name:     name,
		fallback: fallback,
		entries:  make(map[string]string, len(pairs)/2),
		order:    make([]string, 0, len(pairs)/2),
	}
	for i := 0; i < len(pairs); i += 2 {
		key, value := pairs[i], pairs[i+1]
		if _, dup := t.entries[key]; dup {
			panic("themeopt: duplicate key " + key + " in table " + name)
		}
		t.entries[key] = value
		t.order = append(t.order, key)
	}
	if _, ok := t.entries[fallback]; !ok {
		panic("themeopt: fallback " + fallback + " missing from table " + name)
	}
	return t
}

// Name returns the table's category name.
func (t *Table) Name() string {
	return t.name
}

// Fallback returns the key used when a lookup misses.
func (t *Table) Fallback() string {
	return t.fallback
}

// Lookup returns the value for key and whether it exists.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Has reports whether key is present in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Resolve returns the value for key, or the fallback entry's value when key
// is empty or unknown. It never returns an empty string.
func (t *Table) Resolve(key string) string {
	if v, ok := t.entries[key]; ok && key != "" {
		return v
	}
	return t.entries[t.fallback]
}

// Keys returns the table keys in declaration order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Map returns a copy of the table contents.
func (t *Table) Map() map[string]string {
	m := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		m[k] = v
	}
	return m
}
