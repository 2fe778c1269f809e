package recommender

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/fitpath/internal/learning"
	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/profile"
)

var sampleResources = learning.Catalog{
	"leadership":       "Leadership fundamentals course",
	"machine learning": "Applied machine learning",
}

func sampleUser() *profile.User {
	return &profile.User{
		ID: "user1",
		Personality: profile.PersonalityProfile{
			PreferredEnvironments: []profile.WorkEnvironment{profile.Remote, profile.Hybrid},
			Types:                 []profile.PersonalityType{profile.Creative, profile.Introvert},
		},
		Skills: profile.SkillProfile{
			Technical: []string{"python", "data analysis", "machine learning"},
			Soft:      []string{"communication", "problem-solving"},
		},
		Emotional: profile.EmotionalProfile{
			StressTolerance:     0.7,
			GrowthMindset:       0.9,
			EmotionalStability:  0.8,
			SatisfactionHistory: []float64{0.8, 0.7, 0.9},
		},
	}
}

func sampleOpportunity() *profile.Opportunity {
	return &profile.Opportunity{
		ID:                  "job1",
		Title:               "Senior Data Scientist",
		Company:             "Tech Corp",
		RequiredSkills:      []string{"python", "machine learning", "leadership"},
		Environment:         profile.Hybrid,
		PersonalityFit:      []profile.PersonalityType{profile.Analytical, profile.Creative},
		GrowthOpportunities: []string{"management track", "research projects"},
		StressLevel:         0.6,
	}
}

func newSampleEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(sampleResources, zap.NewNop())
	e.RegisterUser(sampleUser())
	e.RegisterOpportunity(sampleOpportunity())
	return e
}

func TestRecommendSampleScenario(t *testing.T) {
	e := newSampleEngine(t)

	recs, err := e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "job1", rec.OpportunityID)
	assert.Equal(t, "Senior Data Scientist", rec.Title)
	assert.Equal(t, "Tech Corp", rec.Company)
	assert.Equal(t, profile.Hybrid, rec.WorkEnvironment)
	assert.Equal(t, []string{"management track", "research projects"}, rec.GrowthOpportunities)
	assert.InDelta(t, 0.533, rec.PersonalityMatch, 1e-3)
	assert.InDelta(t, 0.88, rec.EmotionalFit, 1e-3)
	assert.InDelta(t, 0.667, rec.SkillMatch, 1e-3)
	assert.InDelta(t, 0.678, rec.TotalScore, 1e-3)
}

func TestRecommendReturnsIndependentCopies(t *testing.T) {
	e := newSampleEngine(t)

	recs, err := e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	recs[0].GrowthOpportunities[0] = "changed"

	again, err := e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"management track", "research projects"}, again[0].GrowthOpportunities)

	o, err := e.Opportunity("job1")
	require.NoError(t, err)
	assert.Equal(t, "management track", o.GrowthOpportunities[0])
}

func TestRecommendUnknownUser(t *testing.T) {
	e := newSampleEngine(t)

	_, err := e.Recommend("ghost", DefaultLimit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrOpportunityNotFound))
}

func TestRecommendLimitsAndOrdering(t *testing.T) {
	e := newSampleEngine(t)

	// clones of job1 tie on every score and must come back ordered by ID
	for _, id := range []string{"job4", "job2", "job3"} {
		o := sampleOpportunity()
		o.ID = id
		e.RegisterOpportunity(o)
	}
	best := sampleOpportunity()
	best.ID = "job9"
	best.RequiredSkills = []string{"python"}
	e.RegisterOpportunity(best)
	worst := sampleOpportunity()
	worst.ID = "job0"
	worst.Environment = profile.Office
	worst.StressLevel = 0
	e.RegisterOpportunity(worst)

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "negative limit", limit: -1, want: []string{}},
		{name: "zero limit", limit: 0, want: []string{}},
		{name: "top two", limit: 2, want: []string{"job9", "job1"}},
		{name: "default", limit: DefaultLimit, want: []string{"job9", "job1", "job2", "job3", "job4"}},
		{name: "limit above candidates", limit: 100, want: []string{"job9", "job1", "job2", "job3", "job4", "job0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := e.Recommend("user1", tt.limit)
			require.NoError(t, err)
			require.NotNil(t, recs)

			ids := make([]string, 0, len(recs))
			for i, r := range recs {
				ids = append(ids, r.OpportunityID)
				if i > 0 {
					assert.GreaterOrEqual(t, recs[i-1].TotalScore, r.TotalScore)
				}
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	e := newSampleEngine(t)
	for i := range 20 {
		o := sampleOpportunity()
		o.ID = fmt.Sprintf("job-%02d", i)
		o.StressLevel = float64(i%4) / 4
		e.RegisterOpportunity(o)
	}

	first, err := e.Recommend("user1", 10)
	require.NoError(t, err)
	for range 10 {
		again, err := e.Recommend("user1", 10)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	e := newSampleEngine(t)

	replacement := sampleOpportunity()
	replacement.Title = "Principal Data Scientist"
	e.RegisterOpportunity(replacement)
	e.RegisterOpportunity(replacement)

	recs, err := e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Principal Data Scientist", recs[0].Title)

	assert.Equal(t, []string{"job1"}, e.Opportunities())
	assert.Equal(t, []string{"user1"}, e.Users())

	e.RegisterUser(nil)
	e.RegisterOpportunity(nil)
	assert.Equal(t, []string{"user1"}, e.Users())
}

func TestSuggestLearningPath(t *testing.T) {
	e := newSampleEngine(t)

	path, err := e.SuggestLearningPath("user1", "job1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leadership fundamentals course"}, path)

	_, err = e.SuggestLearningPath("ghost", "job1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = e.SuggestLearningPath("user1", "ghost")
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuggestLearningPathSkipsUnmappedSkills(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	e := New(learning.Catalog{}, zap.New(core))
	e.RegisterUser(sampleUser())
	e.RegisterOpportunity(sampleOpportunity())

	path, err := e.SuggestLearningPath("user1", "job1")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
	skipped := observed.FilterMessage("skills without learning resources skipped").All()
	require.Len(t, skipped, 1)
	ctx := skipped[0].ContextMap()
	assert.Equal(t, "user1", ctx[logger.FieldUserID])
	assert.Equal(t, "job1", ctx[logger.FieldOpportunityID])
	assert.EqualValues(t, 1, ctx["omitted"])
}

type recordingObserver struct {
	mu          sync.Mutex
	recommended int
	unknown     int
	reevaluated []float64
	resolved    int
	omitted     int
	lastTotals  []float64
}

func (r *recordingObserver) Recommended(_ string, totals []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recommended++
	r.lastTotals = totals
}

func (r *recordingObserver) SatisfactionRecorded(known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !known {
		r.unknown++
	}
}

func (r *recordingObserver) Reevaluated(_ string, mean float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reevaluated = append(r.reevaluated, mean)
}

func (r *recordingObserver) LearningPathResolved(resolved, omitted int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved += resolved
	r.omitted += omitted
}

func TestObserverReceivesEvents(t *testing.T) {
	e := newSampleEngine(t)
	obs := &recordingObserver{}
	e.SetObserver(obs)

	_, err := e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	_, err = e.SuggestLearningPath("user1", "job1")
	require.NoError(t, err)
	e.RecordSatisfaction("ghost", 0.1)

	assert.Equal(t, 1, obs.recommended)
	assert.Len(t, obs.lastTotals, 1)
	assert.Equal(t, 1, obs.resolved)
	assert.Equal(t, 0, obs.omitted)
	assert.Equal(t, 1, obs.unknown)

	e.SetObserver(nil)
	_, err = e.Recommend("user1", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, 1, obs.recommended)
}
