// Package filter applies chains of predicates to registry collections.
//
// A chain keeps collection order and drops nil predicates, so callers build
// the chain straight from optional flags:
//
//	items = filter.Apply(items,
//		filter.When(ns != "", byNamespace(ns)),
//		filter.When(dynamic, isDynamic),
//	)
package filter

import (
	"slices"
	"strings"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// When returns p if cond holds, otherwise nil (no constraint).
func When[T any](cond bool, p Predicate[T]) Predicate[T] {
	if !cond {
		return nil
	}
	return p
}

// Apply returns the items for which every non-nil predicate holds. Evaluation
// stops at the first failing predicate per item.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	preds = slices.DeleteFunc(preds, func(p Predicate[T]) bool { return p == nil })
	// No filters: return items as is, without copying.
	if len(preds) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if all(it, preds) {
			out = append(out, it)
		}
	}
	return out
}

func all[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(it) {
			return false
		}
	}
	return true
}

// InNamespace reports whether name starts with ns + "/".
func InNamespace(name, ns string) bool {
	return strings.HasPrefix(name, ns+"/")
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyContainsFold reports whether any element contains substr, ignoring case.
func AnyContainsFold(list []string, substr string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return ContainsFold(s, substr) })
}

// SplitList splits a comma-separated flag value into trimmed, non-empty parts.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
