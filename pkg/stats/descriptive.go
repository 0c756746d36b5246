// Package stats provides the statistic primitives shared by the indicator packages
package stats

import (
	"math"
	"sort"
)

// Sum 求和
func Sum(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum
}

// Mean 计算均值
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float64(len(data))
}

// Median 计算中位数
// 偶数长度时取中间两个值的平均
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode 计算众数
// 出现次数最多的值；并列时取最小值；所有值都不相同时退化为均值
func Mode(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(data))
	for _, v := range data {
		counts[v]++
	}

	best, bestCount := 0.0, 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}

	if bestCount == 1 {
		return Mean(data)
	}
	return best
}

// Variance 计算总体方差
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	mean := Mean(data)
	var variance float64
	for _, v := range data {
		diff := v - mean
		variance += diff * diff
	}
	return variance / float64(len(data))
}

// StdDev 计算总体标准差
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Max 最大值
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return data[ArgMax(data)]
}

// Min 最小值
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return data[ArgMin(data)]
}

// ArgMax 返回最大值的下标，并列时取最后出现的位置
func ArgMax(data []float64) int {
	idx := 0
	for i, v := range data {
		if v >= data[idx] {
			idx = i
		}
	}
	return idx
}

// ArgMin 返回最小值的下标，并列时取最后出现的位置
func ArgMin(data []float64) int {
	idx := 0
	for i, v := range data {
		if v <= data[idx] {
			idx = i
		}
	}
	return idx
}

// AbsoluteDeviation 计算相对 center 的平均绝对偏差
func AbsoluteDeviation(data []float64, center float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += math.Abs(v - center)
	}
	return sum / float64(len(data))
}

// MedianAbsoluteDeviation 计算相对 center 的中位绝对偏差
func MedianAbsoluteDeviation(data []float64, center float64) float64 {
	if len(data) == 0 {
		return 0
	}

	diffs := make([]float64, len(data))
	for i, v := range data {
		diffs[i] = math.Abs(v - center)
	}
	return Median(diffs)
}
