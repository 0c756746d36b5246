package stats

import "math"

// Covariance 计算总体协方差
// cov(X,Y) = Σ[(xi - x̄)(yi - ȳ)] / n
func Covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var covariance float64
	for i := range x {
		covariance += (x[i] - meanX) * (y[i] - meanY)
	}
	return covariance / float64(len(x))
}

// Correlation 计算 Pearson 相关系数
// 任一序列无波动时返回 0
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	denominator := StdDev(x) * StdDev(y)
	if denominator == 0 {
		return 0
	}
	return Covariance(x, y) / denominator
}

// LinearRegression 计算最小二乘回归 y = slope * x + intercept
// x 无波动时斜率为 0，截距为 y 的均值
func LinearRegression(x, y []float64) (slope, intercept float64) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var numerator, denominator float64
	for i := range x {
		diffX := x[i] - meanX
		numerator += diffX * (y[i] - meanY)
		denominator += diffX * diffX
	}

	if denominator == 0 {
		return 0, meanY
	}

	slope = numerator / denominator
	intercept = meanY - slope*meanX
	return slope, intercept
}

// RegressionFit 回归拟合结果及残差诊断
type RegressionFit struct {
	Slope        float64
	Intercept    float64
	RSquared     float64
	AdjRSquared  float64
	RMSE         float64
	DurbinWatson float64
	Observations int
}

// FitLine 对 (x, y) 做线性回归并计算拟合优度
//
// 约定：
// - 残差相对 y 的量级可以忽略时视为完全拟合：R² = 1，RMSE = 0，Durbin-Watson = 2
// - 少于 3 个点时调整 R² 等于 R²
func FitLine(x, y []float64) RegressionFit {
	n := len(x)
	if n != len(y) || n == 0 {
		return RegressionFit{}
	}

	slope, intercept := LinearRegression(x, y)
	meanY := Mean(y)

	var ssr, sst, dwNum, scale float64
	prevResidual := 0.0
	for i := range x {
		residual := y[i] - (slope*x[i] + intercept)
		ssr += residual * residual
		diff := y[i] - meanY
		sst += diff * diff
		if i > 0 {
			step := residual - prevResidual
			dwNum += step * step
		}
		prevResidual = residual
		scale = math.Max(scale, math.Abs(y[i]))
	}

	fit := RegressionFit{
		Slope:        slope,
		Intercept:    intercept,
		RSquared:     1,
		DurbinWatson: 2,
		Observations: n,
	}

	tol := 1e-9 * (1 + scale)
	if ssr > float64(n)*tol*tol {
		fit.RMSE = math.Sqrt(ssr / float64(n))
		fit.RSquared = 1 - ssr/sst
		fit.DurbinWatson = dwNum / ssr
	}

	fit.AdjRSquared = fit.RSquared
	if n > 2 {
		fit.AdjRSquared = 1 - (1-fit.RSquared)*float64(n-1)/float64(n-2)
	}

	return fit
}
