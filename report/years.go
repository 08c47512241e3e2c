package report

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/denismitr/gs"
	"github.com/samber/lo"
)

// Freeform catalogue dates ("c. 1482", "sec. XIV") carry at most one
// plausible year: the first run of 3 or 4 consecutive digits in this
// range.
const (
	yearFloor = 100
	yearCeil  = 2024
)

// Year extracts the first plausible year from a freeform date string.
func Year(text string) (int, bool) {
	run := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] >= '0' && text[i] <= '9' {
			run++
			continue
		}
		if run == 3 || run == 4 {
			year, err := strconv.Atoi(text[i-run : i])
			if err == nil && year >= yearFloor && year <= yearCeil {
				return year, true
			}
		}
		run = 0
	}
	return 0, false
}

// BarsByYear buckets counts keyed by freeform date strings into year
// intervals. The interval starts at 50 years and widens by half its
// size until the number of buckets fits maxGroups. Labels render as
// "<start>-<end>". Entries with no plausible year are skipped; their
// total weight is returned alongside the chosen interval.
func BarsByYear(counts []gs.Pair[string, int], maxGroups int) (bars []Bar, interval int, skipped int) {
	minYear, maxYear := yearCeil, yearFloor
	var dated []gs.Pair[int, int]
	for _, p := range counts {
		year, ok := Year(p.Key)
		if !ok {
			skipped += p.Value
			continue
		}
		dated = append(dated, gs.Pair[int, int]{Key: year, Value: p.Value})
		minYear = min(minYear, year)
		maxYear = max(maxYear, year)
	}
	if len(dated) == 0 {
		return nil, 0, skipped
	}
	if maxGroups < 1 {
		maxGroups = 1
	}

	interval = 50
	for (maxYear-minYear)/interval+1 > maxGroups {
		interval = interval * 3 / 2
	}

	buckets := make(map[int]int)
	for _, p := range dated {
		idx := (p.Key - minYear) / interval
		buckets[minYear+idx*interval] += p.Value
	}

	starts := lo.Keys(buckets)
	slices.Sort(starts)

	bars = lo.Map(starts, func(start int, _ int) Bar {
		return Bar{
			Label: fmt.Sprintf("%d-%d", start, start+interval-1),
			Value: buckets[start],
		}
	})
	return bars, interval, skipped
}
