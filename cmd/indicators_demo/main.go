package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/yourusername/quantlink-ti/pkg/charttrends"
	"github.com/yourusername/quantlink-ti/pkg/config"
	"github.com/yourusername/quantlink-ti/pkg/indicators"
	"github.com/yourusername/quantlink-ti/pkg/logger"
	"github.com/yourusername/quantlink-ti/pkg/standard"
)

const bars = 60

func main() {
	fmt.Println("==========================================")
	fmt.Println("技术指标演示程序")
	fmt.Println("Technical Indicators Demo")
	fmt.Println("==========================================")
	fmt.Println()

	cfg := config.Default()
	log, err := logger.New("indicators-demo", cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建日志失败: %v\n", err)
		os.Exit(1)
	}

	lib := indicators.NewLibrary(indicators.WithLogger(log), indicators.WithWorkers(cfg.Engine.Workers))

	fmt.Printf("已配置 %d 个技术指标:\n", len(cfg.Indicators))
	for i, ind := range cfg.Indicators {
		fmt.Printf("%2d. %s (%s)\n", i+1, ind.Name, ind.Type)
	}
	fmt.Println()

	scenarios := []struct {
		name  string
		close func(i int) float64
	}{
		{"场景 1: 强劲上升趋势", func(i int) float64 { return 100 + 2*float64(i) }},
		{"场景 2: 下降趋势", func(i int) float64 { return 220 - 2*float64(i) }},
		{"场景 3: 高波动震荡", func(i int) float64 { return 100 + 15*math.Sin(float64(i)) }},
		{"场景 4: 低波动盘整", func(i int) float64 { return 100 + math.Sin(float64(i)/2) }},
	}

	ctx := context.Background()
	for _, scenario := range scenarios {
		fmt.Printf("========== %s ==========\n", scenario.name)

		s := buildSeries(bars, scenario.close)
		results, err := lib.ComputeAll(ctx, s, cfg.Indicators)
		if err != nil {
			fmt.Printf("计算指标失败: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("最新价格: %.2f\n", s.Close[s.Len()-1])
		fmt.Println()
		fmt.Println("技术指标值:")
		printLatest(results)

		if rsi, err := standard.RSI(s.Close[s.Len()-standard.RSIPeriod:]); err == nil {
			switch {
			case rsi > 70:
				fmt.Printf("  • RSI = %.0f，超买区域\n", rsi)
			case rsi < 30:
				fmt.Printf("  • RSI = %.0f，超卖区域\n", rsi)
			default:
				fmt.Printf("  • RSI = %.0f，中性区域\n", rsi)
			}
		}

		printTrends(s.Close, cfg.Trends)
		fmt.Println()
	}

	fmt.Println("==========================================")
	fmt.Println("演示完成")
	fmt.Println("==========================================")
}

func buildSeries(n int, closeAt func(i int) float64) indicators.Series {
	s := indicators.Series{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		c := closeAt(i)
		open := c
		if i > 0 {
			open = s.Close[i-1]
		}
		s.Open[i] = open
		s.Close[i] = c
		s.High[i] = math.Max(open, c) + 0.5
		s.Low[i] = math.Min(open, c) - 0.5
		s.Volume[i] = 1000 + float64(i%7)*100
	}
	return s
}

func printLatest(results map[string]indicators.Output) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lines := make([]string, 0, len(results[name]))
		for line := range results[name] {
			lines = append(lines, line)
		}
		sort.Strings(lines)
		for _, line := range lines {
			values := results[name][line]
			label := name
			if len(lines) > 1 {
				label = name + "." + line
			}
			fmt.Printf("  %-22s %12.4f\n", label, values[len(values)-1])
		}
	}
}

func printTrends(prices []float64, cfg charttrends.BreakDownConfig) {
	fmt.Println("趋势分析:")

	if overall, err := charttrends.OverallTrend(prices); err == nil {
		fmt.Printf("  • 整体斜率 = %.3f\n", overall.Slope)
	}

	segments, err := charttrends.BreakDownTrends(prices, cfg)
	if err != nil {
		fmt.Printf("  • 趋势分段失败: %v\n", err)
		return
	}
	fmt.Printf("  • 趋势分段 %d 段:\n", len(segments))
	for _, seg := range segments {
		fmt.Printf("      [%3d, %3d] 斜率 %.3f\n", seg.Start, seg.End, seg.Slope)
	}
}
