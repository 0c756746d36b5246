// Package indicators provides technical indicators over price and volume series.
//
// Every indicator has a single form, computing one value (or one small
// struct) from a window, and a bulk form sliding that window over a series.
// Bulk output element i belongs to the window ending at input index
// i+period-1. Functions are pure and safe for concurrent use.
package indicators

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Series is an OHLCV price history; channels an indicator does not read may be empty
type Series struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// Len returns the number of bars
func (s Series) Len() int {
	return len(s.Close)
}

// Validate checks that every non-empty channel is aligned with Close
func (s Series) Validate() error {
	if len(s.Close) == 0 {
		return fmt.Errorf("%w: series has no close prices", ErrInvalidInput)
	}
	for name, c := range map[string][]float64{"open": s.Open, "high": s.High, "low": s.Low, "volume": s.Volume} {
		if len(c) != 0 && len(c) != len(s.Close) {
			return fmt.Errorf("%w: %s has %d bars, close has %d", ErrMismatchedLengths, name, len(c), len(s.Close))
		}
	}
	return nil
}

// TypicalPrice returns (High + Low + Close) / 3 per bar
func (s Series) TypicalPrice() ([]float64, error) {
	if err := s.require("high", "low"); err != nil {
		return nil, err
	}
	tp := make([]float64, len(s.Close))
	for i := range tp {
		tp[i] = (s.High[i] + s.Low[i] + s.Close[i]) / 3
	}
	return tp, nil
}

func (s Series) require(channels ...string) error {
	for _, name := range channels {
		var c []float64
		switch name {
		case "open":
			c = s.Open
		case "high":
			c = s.High
		case "low":
			c = s.Low
		case "volume":
			c = s.Volume
		default:
			c = s.Close
		}
		if len(c) == 0 {
			return fmt.Errorf("%w: series has no %s channel", ErrInvalidInput, name)
		}
	}
	return nil
}

// Output maps an indicator's line names to values; every line is aligned
// to the end of the input series and may be shorter than it
type Output map[string][]float64

// ComputeFunc evaluates a configured indicator over a series
type ComputeFunc func(s Series) (Output, error)

// IndicatorFactory builds a ComputeFunc from parameters
type IndicatorFactory func(params Params) (ComputeFunc, error)

// IndicatorConfig holds indicator configuration
type IndicatorConfig struct {
	Name       string                 `json:"name" yaml:"name"`
	Type       string                 `json:"type" yaml:"type"`
	Parameters map[string]interface{} `json:"parameters" yaml:"parameters"`
}

// Indicator is a configured, named indicator
type Indicator struct {
	name    string
	typ     string
	compute ComputeFunc
}

// GetName returns the indicator name
func (ind *Indicator) GetName() string {
	return ind.name
}

// GetType returns the registered type the indicator was built from
func (ind *Indicator) GetType() string {
	return ind.typ
}

// Compute evaluates the indicator over s
func (ind *Indicator) Compute(s Series) (Output, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out, err := ind.compute(s)
	if err != nil {
		return nil, fmt.Errorf("indicator %s (%s): %w", ind.name, ind.typ, err)
	}
	return out, nil
}

// Library manages indicator factories and evaluates configured indicators
type Library struct {
	factories map[string]IndicatorFactory
	logger    *slog.Logger
	workers   int
	mu        sync.RWMutex
}

// Option configures a Library
type Option func(*Library)

// WithLogger sets the logger used for evaluation events
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithWorkers bounds the number of indicators evaluated at once (0 = unbounded)
func WithWorkers(n int) Option {
	return func(l *Library) {
		l.workers = n
	}
}

// NewLibrary creates a library with every built-in indicator registered
func NewLibrary(opts ...Option) *Library {
	lib := &Library{
		factories: make(map[string]IndicatorFactory),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	registerBuiltins(lib)
	return lib
}

// RegisterFactory registers an indicator factory
func (l *Library) RegisterFactory(indicatorType string, factory IndicatorFactory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories[indicatorType] = factory
}

// Types lists the registered indicator types in sorted order
func (l *Library) Types() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	types := make([]string, 0, len(l.factories))
	for t := range l.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Create builds a named indicator from a registered type
func (l *Library) Create(name, indicatorType string, params Params) (*Indicator, error) {
	l.mu.RLock()
	factory, ok := l.factories[indicatorType]
	l.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndicatorTypeNotFound, indicatorType)
	}

	compute, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s (%s): %w", name, indicatorType, err)
	}
	return &Indicator{name: name, typ: indicatorType, compute: compute}, nil
}

// ComputeAll builds every configured indicator and evaluates them over s
// concurrently. The first failure cancels the remaining work.
func (l *Library) ComputeAll(ctx context.Context, s Series, configs []IndicatorConfig) (map[string]Output, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	built := make([]*Indicator, len(configs))
	seen := make(map[string]bool, len(configs))
	for i, cfg := range configs {
		if seen[cfg.Name] {
			return nil, fmt.Errorf("%w: duplicate indicator name %q", ErrInvalidInput, cfg.Name)
		}
		seen[cfg.Name] = true

		ind, err := l.Create(cfg.Name, cfg.Type, cfg.Parameters)
		if err != nil {
			return nil, err
		}
		built[i] = ind
	}

	outputs := make([]Output, len(built))
	g, gctx := errgroup.WithContext(ctx)
	if l.workers > 0 {
		g.SetLimit(l.workers)
	}
	for i, ind := range built {
		i, ind := i, ind
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out, err := ind.Compute(s)
			if err != nil {
				l.logger.Warn("indicator failed", "name", ind.name, "type", ind.typ, "error", err)
				return err
			}
			l.logger.Debug("indicator computed", "name", ind.name, "type", ind.typ,
				"bars", s.Len(), "elapsed", time.Since(start))
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make(map[string]Output, len(built))
	for i, ind := range built {
		results[ind.name] = outputs[i]
	}
	return results, nil
}
