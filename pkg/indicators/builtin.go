package indicators

func registerBuiltins(lib *Library) {
	// Averages and dispersion
	lib.RegisterFactory("moving_average", newMovingAverageFromConfig)
	lib.RegisterFactory("deviation", newDeviationFromConfig)
	lib.RegisterFactory("mcginley_dynamic", newMcGinleyFromConfig)

	// Candle indicators
	lib.RegisterFactory("envelopes", newEnvelopesFromConfig)
	lib.RegisterFactory("bands", newBandsFromConfig)
	lib.RegisterFactory("ichimoku", newIchimokuFromConfig)
	lib.RegisterFactory("donchian", newDonchianFromConfig)
	lib.RegisterFactory("keltner", newKeltnerFromConfig)
	lib.RegisterFactory("supertrend", newSupertrendFromConfig)

	// Momentum indicators
	lib.RegisterFactory("rsi", newRSIFromConfig)
	lib.RegisterFactory("stochastic", newStochasticFromConfig)
	lib.RegisterFactory("williams_r", newWilliamsRFromConfig)
	lib.RegisterFactory("mfi", newMFIFromConfig)
	lib.RegisterFactory("roc", newROCFromConfig)
	lib.RegisterFactory("obv", newOBVFromConfig)
	lib.RegisterFactory("cci", newCCIFromConfig)
	lib.RegisterFactory("macd", newMACDFromConfig)
	lib.RegisterFactory("chaikin", newChaikinFromConfig)
	lib.RegisterFactory("ppo", newPPOFromConfig)
	lib.RegisterFactory("cmo", newCMOFromConfig)

	// Trend indicators
	lib.RegisterFactory("aroon", newAroonFromConfig)
	lib.RegisterFactory("psar", newParabolicSARFromConfig)
	lib.RegisterFactory("dms", newDMSFromConfig)
	lib.RegisterFactory("vpt", newVPTFromConfig)
	lib.RegisterFactory("tsi", newTSIFromConfig)

	// Strength indicators
	lib.RegisterFactory("ad", newADFromConfig)
	lib.RegisterFactory("pvi", newVolumeIndexFromConfig(PositiveVolumeIndexBulk))
	lib.RegisterFactory("nvi", newVolumeIndexFromConfig(NegativeVolumeIndexBulk))
	lib.RegisterFactory("rvi", newRVIFromConfig)

	// Volatility and other indicators
	lib.RegisterFactory("ulcer_index", newUlcerFromConfig)
	lib.RegisterFactory("volatility_system", newVolatilitySystemFromConfig)
	lib.RegisterFactory("atr", newATRFromConfig)
	lib.RegisterFactory("ibs", newIBSFromConfig)
	lib.RegisterFactory("positivity", newPositivityFromConfig)
}

func single(values []float64, err error) (Output, error) {
	if err != nil {
		return nil, err
	}
	return Output{"value": values}, nil
}

func bandOutput(bands []Band, err error) (Output, error) {
	if err != nil {
		return nil, err
	}
	out := Output{
		"lower":  make([]float64, len(bands)),
		"middle": make([]float64, len(bands)),
		"upper":  make([]float64, len(bands)),
	}
	for i, b := range bands {
		out["lower"][i] = b.Lower
		out["middle"][i] = b.Middle
		out["upper"][i] = b.Upper
	}
	return out, nil
}

func newMovingAverageFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	kind := r.ma("moving_average", MASimple)
	return func(s Series) (Output, error) {
		return single(MovingAverageBulk(s.Close, kind, period))
	}, r.err
}

func newDeviationFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	kind := r.dev("deviation", DevStandard)
	return func(s Series) (Output, error) {
		return single(DeviationBulk(s.Close, kind, period))
	}, r.err
}

func newMcGinleyFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 10)
	previous := r.float("previous", 0)
	return func(s Series) (Output, error) {
		return single(McGinleyDynamicBulk(s.Close, previous, period))
	}, r.err
}

func newEnvelopesFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	kind := r.ma("moving_average", MASimple)
	difference := r.float("difference", 3)
	return func(s Series) (Output, error) {
		return bandOutput(MovingConstantEnvelopesBulk(s.Close, kind, difference, period))
	}, r.err
}

func newBandsFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	maKind := r.ma("moving_average", MASimple)
	devKind := r.dev("deviation", DevStandard)
	multiplier := r.float("multiplier", 2)
	return func(s Series) (Output, error) {
		return bandOutput(MovingConstantBandsBulk(s.Close, maKind, devKind, multiplier, period))
	}, r.err
}

func newIchimokuFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	conversion := r.int("conversion_period", 9)
	base := r.int("base_period", 26)
	spanB := r.int("span_b_period", 52)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		clouds, err := IchimokuBulk(s.High, s.Low, s.Close, conversion, base, spanB)
		if err != nil {
			return nil, err
		}
		out := Output{}
		for _, line := range []string{"span_a", "span_b", "base", "conversion", "lagged"} {
			out[line] = make([]float64, len(clouds))
		}
		for i, c := range clouds {
			out["span_a"][i] = c.LeadingSpanA
			out["span_b"][i] = c.LeadingSpanB
			out["base"][i] = c.BaseLine
			out["conversion"][i] = c.ConversionLine
			out["lagged"][i] = c.LaggedPrice
		}
		return out, nil
	}, r.err
}

func newDonchianFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return bandOutput(DonchianChannelsBulk(s.High, s.Low, period))
	}, r.err
}

func newKeltnerFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	maKind := r.ma("moving_average", MAExponential)
	atrKind := r.ma("atr_moving_average", MASimple)
	multiplier := r.float("multiplier", 2)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return bandOutput(KeltnerChannelBulk(s.High, s.Low, s.Close, maKind, atrKind, multiplier, period))
	}, r.err
}

func newSupertrendFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 10)
	kind := r.ma("moving_average", MASmoothed)
	multiplier := r.float("multiplier", 3)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(SupertrendBulk(s.High, s.Low, s.Close, kind, multiplier, period))
	}, r.err
}

func newRSIFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	kind := r.ma("moving_average", MASmoothed)
	return func(s Series) (Output, error) {
		return single(RSIBulk(s.Close, kind, period))
	}, r.err
}

func newStochasticFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	signalPeriod := r.int("signal_period", 3)
	kind := r.ma("moving_average", MASimple)
	return func(s Series) (Output, error) {
		k, err := StochasticOscillatorBulk(s.Close, period)
		if err != nil {
			return nil, err
		}
		d, err := SlowStochasticBulk(k, kind, signalPeriod)
		if err != nil {
			return nil, err
		}
		return Output{"k": k, "d": d}, nil
	}, r.err
}

func newWilliamsRFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(WilliamsPercentRBulk(s.High, s.Low, s.Close, period))
	}, r.err
}

func newMFIFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	return func(s Series) (Output, error) {
		if err := s.require("volume"); err != nil {
			return nil, err
		}
		tp, err := s.TypicalPrice()
		if err != nil {
			return nil, err
		}
		return single(MoneyFlowIndexBulk(tp, s.Volume, period))
	}, r.err
}

func newROCFromConfig(p Params) (ComputeFunc, error) {
	return func(s Series) (Output, error) {
		return single(RateOfChangeBulk(s.Close))
	}, nil
}

func newOBVFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	previous := r.float("previous", 0)
	return func(s Series) (Output, error) {
		if err := s.require("volume"); err != nil {
			return nil, err
		}
		return single(OnBalanceVolumeBulk(s.Close, s.Volume, previous))
	}, r.err
}

func newCCIFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 20)
	maKind := r.ma("moving_average", MASimple)
	devKind := r.dev("deviation", DevMean)
	constant := r.float("constant", 0.015)
	return func(s Series) (Output, error) {
		tp, err := s.TypicalPrice()
		if err != nil {
			return nil, err
		}
		return single(CommodityChannelIndexBulk(tp, maKind, devKind, constant, period))
	}, r.err
}

func newMACDFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	short := r.int("short_period", 12)
	long := r.int("long_period", 26)
	signal := r.int("signal_period", 9)
	kind := r.ma("moving_average", MAExponential)
	return func(s Series) (Output, error) {
		line, err := MACDLineBulk(s.Close, short, kind, long, kind)
		if err != nil {
			return nil, err
		}
		sig, err := SignalLineBulk(line, kind, signal)
		if err != nil {
			return nil, err
		}
		hist := make([]float64, len(sig))
		offset := len(line) - len(sig)
		for i := range sig {
			hist[i] = line[i+offset] - sig[i]
		}
		return Output{"macd": line, "signal": sig, "histogram": hist}, nil
	}, r.err
}

func newChaikinFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	short := r.int("short_period", 3)
	long := r.int("long_period", 10)
	kind := r.ma("moving_average", MAExponential)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low", "volume"); err != nil {
			return nil, err
		}
		values, err := ChaikinOscillatorBulk(s.High, s.Low, s.Close, s.Volume, short, long, 0, kind, kind)
		if err != nil {
			return nil, err
		}
		osc := make([]float64, len(values))
		for i, v := range values {
			osc[i] = v.Oscillator
		}
		return Output{"value": osc}, nil
	}, r.err
}

func newPPOFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	short := r.int("short_period", 12)
	long := r.int("long_period", 26)
	kind := r.ma("moving_average", MAExponential)
	return func(s Series) (Output, error) {
		return single(PercentagePriceOscillatorBulk(s.Close, short, long, kind))
	}, r.err
}

func newCMOFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	return func(s Series) (Output, error) {
		return single(ChandeMomentumOscillatorBulk(s.Close, period))
	}, r.err
}

func newAroonFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 25)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		values, err := AroonIndicatorBulk(s.High, s.Low, period)
		if err != nil {
			return nil, err
		}
		out := Output{"up": make([]float64, len(values)), "down": make([]float64, len(values)), "oscillator": make([]float64, len(values))}
		for i, v := range values {
			out["up"][i] = v.Up
			out["down"][i] = v.Down
			out["oscillator"][i] = v.Oscillator
		}
		return out, nil
	}, r.err
}

func newParabolicSARFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	afStart := r.float("af_start", 0.02)
	afStep := r.float("af_step", 0.02)
	afMax := r.float("af_max", 0.2)
	position := r.position("position", Long)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(ParabolicTimePriceSystemBulk(s.High, s.Low, afStart, afStep, afMax, position, 0))
	}, r.err
}

func newDMSFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	kind := r.ma("moving_average", MASmoothed)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		values, err := DirectionalMovementSystemBulk(s.High, s.Low, s.Close, period, kind)
		if err != nil {
			return nil, err
		}
		out := Output{}
		for _, line := range []string{"plus_di", "minus_di", "adx", "adxr"} {
			out[line] = make([]float64, len(values))
		}
		for i, v := range values {
			out["plus_di"][i] = v.PositiveDI
			out["minus_di"][i] = v.NegativeDI
			out["adx"][i] = v.ADX
			out["adxr"][i] = v.ADXR
		}
		return out, nil
	}, r.err
}

func newVPTFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	previous := r.float("previous", 0)
	return func(s Series) (Output, error) {
		if err := s.require("volume"); err != nil {
			return nil, err
		}
		return single(VolumePriceTrendBulk(s.Close, s.Volume, previous))
	}, r.err
}

func newTSIFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	first := r.int("first_period", 25)
	second := r.int("second_period", 13)
	kind := r.ma("moving_average", MAExponential)
	return func(s Series) (Output, error) {
		return single(TrueStrengthIndexBulk(s.Close, kind, first, kind, second))
	}, r.err
}

func newADFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	previous := r.float("previous", 0)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low", "volume"); err != nil {
			return nil, err
		}
		return single(AccumulationDistributionBulk(s.High, s.Low, s.Close, s.Volume, previous))
	}, r.err
}

func newVolumeIndexFromConfig(bulk func(close, volume []float64, previousIndex float64) ([]float64, error)) IndicatorFactory {
	return func(p Params) (ComputeFunc, error) {
		r := paramReader{p: p}
		previous := r.float("previous", 0)
		return func(s Series) (Output, error) {
			if err := s.require("volume"); err != nil {
				return nil, err
			}
			return single(bulk(s.Close, s.Volume, previous))
		}, r.err
	}
}

func newRVIFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 10)
	kind := r.ma("moving_average", MASimple)
	return func(s Series) (Output, error) {
		if err := s.require("open", "high", "low"); err != nil {
			return nil, err
		}
		return single(RelativeVigorIndexBulk(s.Open, s.High, s.Low, s.Close, kind, period))
	}, r.err
}

func newUlcerFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	return func(s Series) (Output, error) {
		return single(UlcerIndexBulk(s.Close, period))
	}, r.err
}

func newVolatilitySystemFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	multiplier := r.float("multiplier", 3)
	kind := r.ma("moving_average", MASmoothed)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(VolatilitySystemBulk(s.High, s.Low, s.Close, period, multiplier, kind))
	}, r.err
}

func newATRFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	period := r.int("period", 14)
	kind := r.ma("moving_average", MASmoothed)
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(AverageTrueRangeBulk(s.Close, s.High, s.Low, kind, period))
	}, r.err
}

func newIBSFromConfig(p Params) (ComputeFunc, error) {
	return func(s Series) (Output, error) {
		if err := s.require("high", "low"); err != nil {
			return nil, err
		}
		return single(InternalBarStrengthBulk(s.High, s.Low, s.Close))
	}, nil
}

func newPositivityFromConfig(p Params) (ComputeFunc, error) {
	r := paramReader{p: p}
	signalPeriod := r.int("signal_period", 5)
	kind := r.ma("moving_average", MASimple)
	return func(s Series) (Output, error) {
		if err := s.require("open"); err != nil {
			return nil, err
		}
		values, err := PositivityIndicatorBulk(s.Open, s.Close, signalPeriod, kind)
		if err != nil {
			return nil, err
		}
		out := Output{"value": make([]float64, len(values)), "signal": make([]float64, len(values))}
		for i, v := range values {
			out["value"][i] = v.Value
			out["signal"][i] = v.Signal
		}
		return out, nil
	}, r.err
}
