package report

import (
	"cmp"
	"slices"

	"github.com/denismitr/gs"
	"github.com/samber/lo"
)

type (
	// Slice is one chart-ready pie segment.
	Slice struct {
		Label   string
		Count   int
		Percent float64
		Color   string
	}

	// Bar is one chart-ready bar, label and height.
	Bar struct {
		Label string
		Value int
	}
)

// Pie projects counts into pie slices sorted by descending count.
// Keys whose share does not exceed the threshold, or that fall beyond
// the palette, are folded into a single trailing "other" slice.
func Pie(counts []gs.Pair[string, int], cfg Config) []Slice {
	total := lo.SumBy(counts, func(p gs.Pair[string, int]) int { return p.Value })
	if total == 0 {
		return nil
	}

	sorted := make([]gs.Pair[string, int], len(counts))
	copy(sorted, counts)
	slices.SortStableFunc(sorted, func(a, b gs.Pair[string, int]) int {
		return cmp.Compare(b.Value, a.Value)
	})

	distinct := min(len(cfg.Palette), len(sorted))

	var out []Slice
	other := 0
	for i, p := range sorted {
		percent := 100 * float64(p.Value) / float64(total)
		if i < distinct && percent > cfg.OtherThreshold {
			out = append(out, Slice{
				Label:   p.Key,
				Count:   p.Value,
				Percent: percent,
				Color:   cfg.Palette[i],
			})
		} else {
			other += p.Value
		}
	}

	if other > 0 {
		out = append(out, Slice{
			Label:   cfg.OtherLabel,
			Count:   other,
			Percent: 100 * float64(other) / float64(total),
			Color:   cfg.OtherColor,
		})
	}
	return out
}

// Bars projects counts into bars sorted by label.
func Bars(counts []gs.Pair[string, int]) []Bar {
	sorted := make([]gs.Pair[string, int], len(counts))
	copy(sorted, counts)
	slices.SortFunc(sorted, func(a, b gs.Pair[string, int]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return lo.Map(sorted, func(p gs.Pair[string, int], _ int) Bar {
		return Bar{Label: p.Key, Value: p.Value}
	})
}
