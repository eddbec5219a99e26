// Package analytics reshapes dashboard rows into the series a charting
// view renders directly.
package analytics

import (
	"sort"

	"github.com/reportrhq/reportr-go/internal/model"
)

// TrendChart is a pivoted category trend: one label per period and one
// dense series per category. Missing cells are zero.
type TrendChart struct {
	Periods []string
	Series  map[string][]int
}

// PivotCategoryTrend turns (period, category, count) rows into per-category
// series over the sorted distinct periods.
func PivotCategoryTrend(rows []model.CategoryTrendRow) TrendChart {
	periodSet := make(map[string]struct{})
	for _, row := range rows {
		periodSet[row.PeriodDate] = struct{}{}
	}

	periods := make([]string, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	index := make(map[string]int, len(periods))
	for i, p := range periods {
		index[p] = i
	}

	series := make(map[string][]int)
	for _, row := range rows {
		s, ok := series[row.CategoryName]
		if !ok {
			s = make([]int, len(periods))
			series[row.CategoryName] = s
		}
		s[index[row.PeriodDate]] += row.Count
	}

	return TrendChart{Periods: periods, Series: series}
}

// TopCategories returns the n largest slices of a distribution, with
// everything else folded into an "Other" bucket. The input order is
// preserved for ties.
func TopCategories(dist []model.NameValue, n int) []model.NameValue {
	if n <= 0 || len(dist) == 0 {
		return nil
	}

	sorted := make([]model.NameValue, len(dist))
	copy(sorted, dist)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	if len(sorted) <= n {
		return sorted
	}

	top := sorted[:n:n]
	other := 0
	for _, nv := range sorted[n:] {
		other += nv.Value
	}
	return append(top, model.NameValue{Name: "Other", Value: other})
}
