// Package winline finds winning combinations on a single payline.
package winline

import "slices"

// MinMatchCount 最小中奖数量
const MinMatchCount = 3

// Combination 中奖组合
type Combination struct {
	Symbol    int64 `json:"symbol"`    // 符号
	Positions []int `json:"positions"` // 中奖位置，严格递增
}

// Detect returns the winning combinations of line: runs of at least
// MinMatchCount equal symbols. Combinations are ordered by the first time
// their symbol wins; a symbol winning in several disjoint clusters is reported
// once with all positions flattened. line is not modified.
func Detect(line []int64) []Combination {
	if len(line) < MinMatchCount {
		return nil
	}

	// 相邻相同符号分段，不足3个直接丢弃
	var symbols []int64
	merged := make(map[int64][]int)
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && line[i] == line[start] {
			continue
		}
		if i-start >= MinMatchCount {
			symbol := line[start]
			if _, ok := merged[symbol]; !ok {
				symbols = append(symbols, symbol)
			}
			for p := start; p < i; p++ {
				merged[symbol] = append(merged[symbol], p)
			}
		}
		start = i
	}

	var result []Combination
	for _, symbol := range symbols {
		if positions := consecutive(merged[symbol]); len(positions) > 0 {
			result = append(result, Combination{Symbol: symbol, Positions: positions})
		}
	}
	return result
}

// consecutive sorts and dedupes positions, then keeps only the index runs
// (p, p+1, p+2, ...) of at least MinMatchCount.
func consecutive(positions []int) []int {
	slices.Sort(positions)
	positions = slices.Compact(positions)

	var kept []int
	start := 0
	for i := 1; i <= len(positions); i++ {
		if i < len(positions) && positions[i] == positions[i-1]+1 {
			continue
		}
		if i-start >= MinMatchCount {
			kept = append(kept, positions[start:i]...)
		}
		start = i
	}
	return kept
}
