// Package domain provides pure aggregation functions over expense lists.
// Every function is a deterministic function of its input and performs no I/O.
package domain

import (
	"expense_backend/internal/feature/expenses/domain/entity"
)

// Summary bundles the aggregate figures derived from one expense list.
// TopCategory is the empty string when the list is empty.
type Summary struct {
	Total       float64
	Average     float64
	Count       int
	ByCategory  map[entity.Category]float64
	TopCategory entity.Category
}

// Total returns the sum of all amounts. It is 0 for an empty list.
func Total(expenses []entity.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// Average returns the mean amount, defined as 0 for an empty list.
func Average(expenses []entity.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return Total(expenses) / float64(len(expenses))
}

// ByCategory returns the summed amount per category, covering only
// categories actually present in the list.
func ByCategory(expenses []entity.Expense) map[entity.Category]float64 {
	out := make(map[entity.Category]float64, len(expenses))
	for _, e := range expenses {
		out[e.Category] += e.Amount
	}
	return out
}

// TopCategory returns the category with the largest summed amount.
// Ties break to the lexicographically smallest category name, so the result
// does not depend on map iteration order. The second return value is false
// for an empty list.
func TopCategory(expenses []entity.Expense) (entity.Category, bool) {
	totals := ByCategory(expenses)
	if len(totals) == 0 {
		return "", false
	}

	var top entity.Category
	var best float64
	first := true
	for c, sum := range totals {
		switch {
		case first, sum > best:
			top, best = c, sum
			first = false
		case sum == best && c < top:
			top = c
		}
	}
	return top, true
}

// Summarize computes all aggregates for one expense list in a single pass
// over the helpers above.
func Summarize(expenses []entity.Expense) Summary {
	top, _ := TopCategory(expenses)
	return Summary{
		Total:       Total(expenses),
		Average:     Average(expenses),
		Count:       len(expenses),
		ByCategory:  ByCategory(expenses),
		TopCategory: top,
	}
}
