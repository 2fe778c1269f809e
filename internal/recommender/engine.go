// Package recommender ranks career opportunities for registered users and
// tracks their well-being over time.
package recommender

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/learning"
	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/scoring"
)

// DefaultLimit is the number of recommendations returned when the caller has no preference.
const DefaultLimit = 5

// Recommendation is a scored opportunity produced for a single ranking call.
type Recommendation struct {
	OpportunityID       string                  `json:"opportunity_id"`
	Title               string                  `json:"title"`
	Company             string                  `json:"company"`
	TotalScore          float64                 `json:"total_score"`
	PersonalityMatch    float64                 `json:"personality_match"`
	EmotionalFit        float64                 `json:"emotional_fit"`
	SkillMatch          float64                 `json:"skill_match"`
	GrowthOpportunities []string                `json:"growth_opportunities,omitempty"`
	WorkEnvironment     profile.WorkEnvironment `json:"work_environment"`
}

// userEntry outlives re-registration of its ID, so every appender for one
// user shares mu.
type userEntry struct {
	mu   sync.Mutex
	user *profile.User
}

func (u *userEntry) current() *profile.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.user
}

// Engine owns the user and opportunity registries.
type Engine struct {
	mu            sync.RWMutex
	users         map[string]*userEntry
	opportunities map[string]*profile.Opportunity

	resources learning.Resources
	logger    *zap.Logger
	observer  Observer
}

// New creates an engine resolving learning paths against resources.
// A nil logger falls back to a no-op logger.
func New(resources learning.Resources, log *zap.Logger) *Engine {
	return &Engine{
		users:         make(map[string]*userEntry),
		opportunities: make(map[string]*profile.Opportunity),
		resources:     resources,
		logger:        logger.OrNop(log),
		observer:      nopObserver{},
	}
}

// SetObserver installs an observer for engine events. Passing nil restores the no-op observer.
func (e *Engine) SetObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o == nil {
		o = nopObserver{}
	}
	e.observer = o
}

// RegisterUser adds or replaces the user with the same ID.
func (e *Engine) RegisterUser(u *profile.User) {
	if u == nil {
		return
	}
	e.mu.Lock()
	entry, ok := e.users[u.ID]
	if !ok {
		e.users[u.ID] = &userEntry{user: u}
	}
	e.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.user = u
		entry.mu.Unlock()
	}

	e.logger.Debug("user registered", logger.IDs(u.ID, "")...)
}

// RegisterOpportunity adds or replaces the opportunity with the same ID.
func (e *Engine) RegisterOpportunity(o *profile.Opportunity) {
	if o == nil {
		return
	}
	e.mu.Lock()
	e.opportunities[o.ID] = o
	e.mu.Unlock()

	e.logger.Debug("opportunity registered", logger.IDs("", o.ID)...)
}

// Users returns registered user IDs in ascending order.
func (e *Engine) Users() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.users))
	for id := range e.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Opportunities returns registered opportunity IDs in ascending order.
func (e *Engine) Opportunities() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.opportunities))
	for id := range e.opportunities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// User returns the registered user.
func (e *Engine) User(userID string) (*profile.User, error) {
	entry, ok := e.lookupUser(userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return entry.current(), nil
}

// Opportunity returns the registered opportunity.
func (e *Engine) Opportunity(opportunityID string) (*profile.Opportunity, error) {
	e.mu.RLock()
	o, ok := e.opportunities[opportunityID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOpportunityNotFound, opportunityID)
	}
	return o, nil
}

// Recommend scores every registered opportunity for the user and returns the
// best limit entries, highest total first. Equal totals are ordered by
// opportunity ID. A non-positive limit yields an empty result.
func (e *Engine) Recommend(userID string, limit int) ([]Recommendation, error) {
	e.mu.RLock()
	entry, ok := e.users[userID]
	candidates := make([]*profile.Opportunity, 0, len(e.opportunities))
	for _, o := range e.opportunities {
		candidates = append(candidates, o)
	}
	observer := e.observer
	e.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	user := entry.current()
	recs := make([]Recommendation, 0, len(candidates))
	for _, o := range candidates {
		b := scoring.Score(user, o)
		recs = append(recs, Recommendation{
			OpportunityID:       o.ID,
			Title:               o.Title,
			Company:             o.Company,
			TotalScore:          b.Total,
			PersonalityMatch:    b.Personality,
			EmotionalFit:        b.Emotional,
			SkillMatch:          b.Skill,
			GrowthOpportunities: slices.Clone(o.GrowthOpportunities),
			WorkEnvironment:     o.Environment,
		})
	}

	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		if c := cmp.Compare(b.TotalScore, a.TotalScore); c != 0 {
			return c
		}
		return cmp.Compare(a.OpportunityID, b.OpportunityID)
	})

	limit = max(limit, 0)
	if limit < len(recs) {
		recs = recs[:limit]
	}

	totals := make([]float64, 0, len(recs))
	for _, r := range recs {
		totals = append(totals, r.TotalScore)
	}
	observer.Recommended(userID, totals)

	e.logger.Debug("recommendations ranked",
		zap.String(logger.FieldUserID, userID),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(recs)),
	)

	return recs, nil
}

// SuggestLearningPath lists learning resources covering the skills the user
// lacks for the opportunity, ordered by skill tag. Skills without a known
// resource are skipped.
func (e *Engine) SuggestLearningPath(userID, opportunityID string) ([]string, error) {
	u, err := e.User(userID)
	if err != nil {
		return nil, err
	}
	o, err := e.Opportunity(opportunityID)
	if err != nil {
		return nil, err
	}

	gaps := learning.Gaps(u, o)
	path := learning.Resolve(gaps, e.resources)
	omitted := len(gaps) - len(path)

	e.mu.RLock()
	observer := e.observer
	e.mu.RUnlock()
	observer.LearningPathResolved(len(path), omitted)

	log := logger.ForMatch(e.logger, userID, opportunityID)
	if omitted > 0 {
		log.Debug("skills without learning resources skipped", zap.Int("omitted", omitted))
	}
	log.Debug("learning path suggested", zap.Int("gaps", len(gaps)), zap.Int("resources", len(path)))

	return path, nil
}

func (e *Engine) lookupUser(userID string) (*userEntry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, ok := e.users[userID]
	return entry, ok
}
