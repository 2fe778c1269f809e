package filtering

import (
	"fmt"
	"strings"

	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
)

type minScoreFilter struct {
	min float64
}

// NewMinScore drops recommendations with a total score below threshold.
func NewMinScore(threshold float64) Filter {
	return &minScoreFilter{min: threshold}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) IsEnabled() bool { return f.min > 0 }

func (f *minScoreFilter) Apply(recs []recommender.Recommendation) ([]recommender.Recommendation, Step) {
	return keep(recs, func(r recommender.Recommendation) bool { return r.TotalScore >= f.min })
}

type excludeCompaniesFilter struct {
	companies profile.Set[string]
}

// NewExcludeCompanies drops recommendations from the listed companies, ignoring case.
func NewExcludeCompanies(companies []string) Filter {
	set := profile.NewSet[string]()
	for _, c := range companies {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			set[c] = struct{}{}
		}
	}
	return &excludeCompaniesFilter{companies: set}
}

func (f *excludeCompaniesFilter) Name() string { return "exclude_companies" }

func (f *excludeCompaniesFilter) IsEnabled() bool { return f.companies.Len() > 0 }

func (f *excludeCompaniesFilter) Apply(recs []recommender.Recommendation) ([]recommender.Recommendation, Step) {
	return keep(recs, func(r recommender.Recommendation) bool {
		return !f.companies.Contains(strings.ToLower(strings.TrimSpace(r.Company)))
	})
}

type environmentsFilter struct {
	allowed profile.Set[profile.WorkEnvironment]
}

// NewEnvironments keeps only recommendations in the listed work environments.
func NewEnvironments(environments []string) (Filter, error) {
	allowed := profile.NewSet[profile.WorkEnvironment]()
	for _, raw := range environments {
		var env profile.WorkEnvironment
		if err := env.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("environments filter: %w", err)
		}
		allowed[env] = struct{}{}
	}
	return &environmentsFilter{allowed: allowed}, nil
}

func (f *environmentsFilter) Name() string { return "environments" }

func (f *environmentsFilter) IsEnabled() bool { return f.allowed.Len() > 0 }

func (f *environmentsFilter) Apply(recs []recommender.Recommendation) ([]recommender.Recommendation, Step) {
	return keep(recs, func(r recommender.Recommendation) bool { return f.allowed.Contains(r.WorkEnvironment) })
}
