// Package aggregate folds typed records into per-group running totals.
package aggregate

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Totals holds the record count and one running sum per measure of a group.
type Totals struct {
	Count int
	Sums  []decimal.Decimal
}

func (t *Totals) add(values []decimal.Decimal) {
	for len(t.Sums) < len(values) {
		t.Sums = append(t.Sums, decimal.Zero)
	}
	for i, v := range values {
		t.Sums[i] = t.Sums[i].Add(v)
	}
	t.Count++
}

// Sum returns the running sum of measure i, zero when the measure was never seen.
func (t Totals) Sum(i int) decimal.Decimal {
	if i < 0 || i >= len(t.Sums) {
		return decimal.Zero
	}
	return t.Sums[i]
}

// Average divides the sum of measure i by the record count.
func (t Totals) Average(i int) (decimal.Decimal, error) {
	if t.Count == 0 {
		return decimal.Zero, &EmptyGroupError{}
	}
	return t.Sum(i).Div(decimal.NewFromInt(int64(t.Count))), nil
}

// Groups maps group keys to totals and remembers the order keys were first seen.
type Groups[K comparable] struct {
	keys   []K
	totals map[K]*Totals
}

func NewGroups[K comparable]() *Groups[K] {
	return &Groups[K]{totals: make(map[K]*Totals)}
}

// GroupBy folds every record, in input order, into the totals of its key.
func GroupBy[R any, K comparable](records []R, key func(R) K, measures func(R) []decimal.Decimal) *Groups[K] {
	g := NewGroups[K]()
	for _, r := range records {
		g.Add(key(r), measures(r)...)
	}
	return g
}

// Add folds one record's measures into the group k, creating it on first encounter.
func (g *Groups[K]) Add(k K, values ...decimal.Decimal) {
	t, ok := g.totals[k]
	if !ok {
		t = &Totals{}
		g.totals[k] = t
		g.keys = append(g.keys, k)
	}
	t.add(values)
}

// Keys returns group keys in first-encounter order.
func (g *Groups[K]) Keys() []K {
	return slices.Clone(g.keys)
}

// Sorted returns group keys ordered by cmp.
func (g *Groups[K]) Sorted(cmp func(a, b K) int) []K {
	keys := g.Keys()
	slices.SortFunc(keys, cmp)
	return keys
}

func (g *Groups[K]) Get(k K) (Totals, bool) {
	t, ok := g.totals[k]
	if !ok {
		return Totals{}, false
	}
	return Totals{Count: t.Count, Sums: slices.Clone(t.Sums)}, true
}

func (g *Groups[K]) Len() int {
	return len(g.keys)
}

// Total folds all groups together.
func (g *Groups[K]) Total() Totals {
	var total Totals
	for _, k := range g.keys {
		t := g.totals[k]
		for len(total.Sums) < len(t.Sums) {
			total.Sums = append(total.Sums, decimal.Zero)
		}
		for i, s := range t.Sums {
			total.Sums[i] = total.Sums[i].Add(s)
		}
		total.Count += t.Count
	}
	return total
}

// Average returns the average of measure i within group k.
func (g *Groups[K]) Average(k K, i int) (decimal.Decimal, error) {
	t, ok := g.Get(k)
	if !ok || t.Count == 0 {
		return decimal.Zero, &EmptyGroupError{Group: fmt.Sprint(k)}
	}
	return t.Average(i)
}

// CountOnly is a measures function for groupings that only count records.
func CountOnly[R any](R) []decimal.Decimal {
	return nil
}
