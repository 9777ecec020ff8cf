// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package headers

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// field is a single stored header.
type field struct {
	name  string // display casing from the first write
	value string
}

// Store is an ordered, case-insensitive mapping of header names to a single
// string value.
//
// The zero value is an empty store ready to use. A Store is not safe for
// concurrent use; each response owns its own instance.
type Store struct {
	index map[string]*field // lower-cased name -> entry
	order []string          // lower-cased names in insertion order
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		index: make(map[string]*field),
	}
}

// FromMap builds a Store from a plain map. Keys are applied in sorted order so
// that case-variant duplicates (e.g. "Accept" and "accept") resolve the same
// way on every run: the lexically last variant's value wins and the first
// variant's casing is kept.
func FromMap(m map[string]string) *Store {
	s := New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, m[k])
	}
	return s
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// Set stores value under name. If an entry for any case variant of name
// already exists, only its value is replaced and its casing and position are
// left unchanged.
func (s *Store) Set(name, value string) {
	key := normalize(name)
	if s.index == nil {
		s.index = make(map[string]*field)
	}

	if f, ok := s.index[key]; ok {
		f.value = value
		return
	}

	s.index[key] = &field{name: name, value: value}
	s.order = append(s.order, key)
}

// Get returns the value stored for name. The boolean is false when no entry
// exists, which distinguishes an absent header from one set to "".
func (s *Store) Get(name string) (string, bool) {
	f, ok := s.index[normalize(name)]
	if !ok {
		return "", false
	}
	return f.value, true
}

// Value returns the value stored for name, or "" when absent.
func (s *Store) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Has reports whether an entry exists for name, regardless of its value.
func (s *Store) Has(name string) bool {
	_, ok := s.index[normalize(name)]
	return ok
}

// Remove deletes the entry for name. Removing an absent name is a no-op.
func (s *Store) Remove(name string) {
	key := normalize(name)
	if _, ok := s.index[key]; !ok {
		return
	}

	delete(s.index, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
}

// Len returns the number of stored headers.
func (s *Store) Len() int {
	return len(s.order)
}

// Empty reports whether the store holds no headers at all.
func (s *Store) Empty() bool {
	return s.Len() == 0
}

// Keys returns the display names in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.order))
	for _, k := range s.order {
		keys = append(keys, s.index[k].name)
	}
	return keys
}

// All iterates over display names and values in insertion order.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.order {
			f := s.index[k]
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// Map returns a copy of the store keyed by display name.
func (s *Store) Map() map[string]string {
	m := make(map[string]string, len(s.order))
	for name, value := range s.All() {
		m[name] = value
	}
	return m
}

// LowerMap returns a copy of the store keyed by lower-cased name.
func (s *Store) LowerMap() map[string]string {
	m := make(map[string]string, len(s.order))
	for _, k := range s.order {
		m[k] = s.index[k].value
	}
	return m
}
