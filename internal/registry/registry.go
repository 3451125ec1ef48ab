// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry maps API paths to the JSON fields that carry free-text
// user content and must be encrypted on the client.
package registry

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// FieldEncryptionConfig binds a path pattern to the fields encrypted on
// requests to and responses from it.
//
// Pattern segments written as ":name" or "{name}" match one path segment,
// as does "*". Fields use dotted syntax; "[]" marks an array level, so
// "tasks[].title" is the title of every task. When a body is a JSON array,
// the fields apply to each element.
//
// Skip marks a path whose payloads are never touched, even if a later,
// broader pattern would match it.
type FieldEncryptionConfig struct {
	Pattern string
	Fields  []string
	Skip    bool
}

type entry struct {
	config FieldEncryptionConfig
	glob   string
	paths  []FieldPath
}

// Registry is an immutable, ordered list of configs. The first matching
// pattern wins. It is safe for concurrent use.
type Registry struct {
	entries []entry
}

// New validates configs and builds a [Registry].
func New(configs ...FieldEncryptionConfig) (*Registry, error) {
	r := &Registry{entries: make([]entry, 0, len(configs))}

	for _, cfg := range configs {
		glob, err := compilePattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}

		paths := make([]FieldPath, 0, len(cfg.Fields))
		for _, f := range cfg.Fields {
			fp, err := ParseFieldPath(f)
			if err != nil {
				return nil, fmt.Errorf("pattern %s: %w", cfg.Pattern, err)
			}
			for _, seg := range fp {
				if isSystemField(seg.Name) && !seg.Array {
					return nil, fmt.Errorf("%w: %s in %s", ErrSystemField, f, cfg.Pattern)
				}
			}
			paths = append(paths, fp)
		}

		cfg.Fields = append([]string(nil), cfg.Fields...)
		r.entries = append(r.entries, entry{config: cfg, glob: glob, paths: paths})
	}

	return r, nil
}

// MustNew is New for static tables. It panics on an invalid config.
func MustNew(configs ...FieldEncryptionConfig) *Registry {
	r, err := New(configs...)
	if err != nil {
		panic(err)
	}
	return r
}

// FindFieldConfig returns the first config whose pattern matches p.
func (r *Registry) FindFieldConfig(p string) (FieldEncryptionConfig, bool) {
	e, ok := r.find(p)
	if !ok {
		return FieldEncryptionConfig{}, false
	}
	cfg := e.config
	cfg.Fields = append([]string(nil), cfg.Fields...)
	return cfg, true
}

// GetEncryptableFields returns the field paths for p, or nil.
func (r *Registry) GetEncryptableFields(p string) []string {
	e, ok := r.find(p)
	if !ok || e.config.Skip {
		return nil
	}
	return append([]string(nil), e.config.Fields...)
}

// FieldPaths is GetEncryptableFields in parsed form.
func (r *Registry) FieldPaths(p string) []FieldPath {
	e, ok := r.find(p)
	if !ok || e.config.Skip {
		return nil
	}
	return e.paths
}

// ShouldSkipEncryption reports whether payloads for p are left untouched:
// the path is marked Skip, has no config, or lists no fields.
func (r *Registry) ShouldSkipEncryption(p string) bool {
	e, ok := r.find(p)
	return !ok || e.config.Skip || len(e.paths) == 0
}

func (r *Registry) find(p string) (entry, bool) {
	p = NormalizePath(p)
	for _, e := range r.entries {
		if ok, _ := path.Match(e.glob, p); ok {
			return e, true
		}
	}
	return entry{}, false
}

// NormalizePath strips scheme, host, query and trailing slash and cleans
// the result, so "https://h/api/tasks/?page=2" becomes "/api/tasks".
func NormalizePath(p string) string {
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func compilePattern(pattern string) (string, error) {
	if pattern == "" || !strings.HasPrefix(pattern, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	segments := strings.Split(path.Clean(pattern), "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") || (strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")) {
			segments[i] = "*"
		}
	}
	glob := strings.Join(segments, "/")

	if _, err := path.Match(glob, ""); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return glob, nil
}
