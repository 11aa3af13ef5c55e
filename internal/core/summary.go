package core

import "sort"

// FilterAll selects every record regardless of category.
const FilterAll = "all"

// NoTopCategory is the leading-category value for an empty list.
const NoTopCategory = ""

// Summary holds the aggregate figures for the whole list.
type Summary struct {
	Total       Money
	Count       int
	TopCategory string
}

// CategoryAmount is an amount aggregated per category code.
type CategoryAmount struct {
	Code   string
	Amount Money
}

// Visible returns the records matching the category filter, preserving the
// stored (newest-first) order. FilterAll returns the list unchanged.
func Visible(list []Expense, filter string) []Expense {
	if filter == FilterAll || filter == "" {
		return list
	}
	var out []Expense
	for _, e := range list {
		if e.Category == filter {
			out = append(out, e)
		}
	}
	return out
}

// GroupByCategory sums amounts per category and returns the groups sorted
// by descending total. Ties are broken by ascending category code, which
// keeps the ordering deterministic.
func GroupByCategory(list []Expense) []CategoryAmount {
	sums := make(map[string]int64)
	for _, e := range list {
		sums[e.Category] += e.Amount.Cents
	}
	groups := make([]CategoryAmount, 0, len(sums))
	for code, cents := range sums {
		groups = append(groups, CategoryAmount{Code: code, Amount: Money{Cents: cents}})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Amount.Cents != groups[j].Amount.Cents {
			return groups[i].Amount.Cents > groups[j].Amount.Cents
		}
		return groups[i].Code < groups[j].Code
	})
	return groups
}

// Summarize recomputes the aggregate figures from scratch. The total and
// count always cover the whole list, never a filtered view.
func Summarize(list []Expense) Summary {
	s := Summary{Count: len(list), TopCategory: NoTopCategory}
	for _, e := range list {
		s.Total.Cents += e.Amount.Cents
	}
	if groups := GroupByCategory(list); len(groups) > 0 {
		s.TopCategory = groups[0].Code
	}
	return s
}
