// Package filtering narrows ranked recommendations down to what the user asked to see.
package filtering

import (
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/recommender"
)

// Filter represents a single filtering step applied to recommendations.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(recs []recommender.Recommendation) ([]recommender.Recommendation, Step)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the settings consumed by the filters.
type Config struct {
	MinScore         float64  `mapstructure:"min-score"`
	ExcludeCompanies []string `mapstructure:"exclude-companies"`
	Environments     []string `mapstructure:"environments"`
}

// Filtering runs filters in order, keeping the ranking intact.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{steps: steps, logger: logger}
}

// FromConfig builds the standard filter chain.
func FromConfig(cfg *Config, logger *zap.Logger) (*Filtering, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	envs, err := NewEnvironments(cfg.Environments)
	if err != nil {
		return nil, err
	}

	return New([]Filter{
		NewMinScore(cfg.MinScore),
		NewExcludeCompanies(cfg.ExcludeCompanies),
		envs,
	}, logger), nil
}

// Run applies every enabled filter sequentially.
func (f *Filtering) Run(recs []recommender.Recommendation) []recommender.Recommendation {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info := step.Apply(recs)
		f.logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
		recs = next
	}

	return recs
}

func keep(recs []recommender.Recommendation, ok func(recommender.Recommendation) bool) ([]recommender.Recommendation, Step) {
	out := make([]recommender.Recommendation, 0, len(recs))
	for _, r := range recs {
		if ok(r) {
			out = append(out, r)
		}
	}
	return out, Step{Initial: len(recs), Dropped: len(recs) - len(out), Left: len(out)}
}
