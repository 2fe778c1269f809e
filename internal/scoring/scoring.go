// Package scoring computes the compatibility signals between a user and an opportunity.
// Every function is pure and returns a value in [0,1] for normalized inputs.
package scoring

import (
	"cmp"
	"math"

	"github.com/spigell/fitpath/internal/profile"
)

const (
	PersonalityTypeWeight = 0.7
	EnvironmentWeight     = 0.3

	StressWeight          = 0.6
	EmotionalHealthWeight = 0.4

	PersonalityWeight = 0.4
	EmotionalWeight   = 0.3
	SkillWeight       = 0.3
)

// Breakdown is the full set of scores for one user/opportunity pair.
type Breakdown struct {
	Personality float64
	Emotional   float64
	Skill       float64
	Total       float64
}

// Score computes all signals and their weighted total.
func Score(u *profile.User, o *profile.Opportunity) Breakdown {
	b := Breakdown{
		Personality: PersonalityMatch(u, o),
		Emotional:   EmotionalFit(u, o),
		Skill:       SkillMatch(u, o),
	}
	b.Total = Total(b.Personality, b.Emotional, b.Skill)
	return b
}

// Jaccard returns |a∩b|/|a∪b|, or 0 when both sets are empty.
func Jaccard[T cmp.Ordered](a, b profile.Set[T]) float64 {
	union := a.Union(b).Len()
	if union == 0 {
		return 0
	}
	return float64(a.Intersect(b).Len()) / float64(union)
}

func PersonalityMatch(u *profile.User, o *profile.Opportunity) float64 {
	types := Jaccard(profile.NewSet(u.Personality.Types...), profile.NewSet(o.PersonalityFit...))

	env := 0.0
	if profile.NewSet(u.Personality.PreferredEnvironments...).Contains(o.Environment) {
		env = 1.0
	}

	return PersonalityTypeWeight*types + EnvironmentWeight*env
}

// EmotionalFit blends stress compatibility with emotional health.
// Stress inputs outside [0,1] are the caller's responsibility.
func EmotionalFit(u *profile.User, o *profile.Opportunity) float64 {
	e := u.Emotional
	stress := 1 - math.Abs(e.StressTolerance-o.StressLevel)
	health := (e.EmotionalStability + e.GrowthMindset) / 2

	return StressWeight*stress + EmotionalHealthWeight*health
}

// SkillMatch is the share of required skills the user already has, 0 when nothing is required.
func SkillMatch(u *profile.User, o *profile.Opportunity) float64 {
	required := profile.NewSet(o.RequiredSkills...)
	if required.Len() == 0 {
		return 0
	}
	return float64(required.Intersect(u.Skills.All()).Len()) / float64(required.Len())
}

func Total(personality, emotional, skill float64) float64 {
	return PersonalityWeight*personality + EmotionalWeight*emotional + SkillWeight*skill
}
