// Package profile holds the passive records describing users and career opportunities.
package profile

// PersonalityProfile describes how a user prefers to work.
type PersonalityProfile struct {
	// BigFive holds normalized openness, conscientiousness, extraversion,
	// agreeableness and neuroticism scores. Informational only.
	BigFive               map[string]float64 `mapstructure:"big-five" json:"big_five,omitempty"`
	MBTI                  string             `mapstructure:"mbti" json:"mbti,omitempty"`
	WorkValues            []string           `mapstructure:"work-values" json:"work_values,omitempty"`
	PreferredEnvironments []WorkEnvironment  `mapstructure:"preferred-environments" json:"preferred_environments,omitempty"`
	Types                 []PersonalityType  `mapstructure:"types" json:"types,omitempty"`
}

// SkillProfile lists what a user can already do.
type SkillProfile struct {
	Technical       []string `mapstructure:"technical" json:"technical,omitempty"`
	Soft            []string `mapstructure:"soft" json:"soft,omitempty"`
	ExperienceLevel int      `mapstructure:"experience-level" json:"experience_level"`
	Certifications  []string `mapstructure:"certifications" json:"certifications,omitempty"`
}

// All returns technical and soft skills combined.
func (s SkillProfile) All() Set[string] {
	return NewSet(s.Technical...).Union(NewSet(s.Soft...))
}

// EmotionalProfile carries stress and well-being indicators.
// SatisfactionHistory is append-only and time ordered.
type EmotionalProfile struct {
	StressTolerance     float64   `mapstructure:"stress-tolerance" json:"stress_tolerance"`
	WorkLifeBalance     float64   `mapstructure:"work-life-balance" json:"work_life_balance"`
	GrowthMindset       float64   `mapstructure:"growth-mindset" json:"growth_mindset"`
	EmotionalStability  float64   `mapstructure:"emotional-stability" json:"emotional_stability"`
	SatisfactionHistory []float64 `mapstructure:"satisfaction-history" json:"satisfaction_history,omitempty"`
}

type User struct {
	ID          string             `mapstructure:"id" json:"id"`
	Personality PersonalityProfile `mapstructure:"personality" json:"personality"`
	Skills      SkillProfile       `mapstructure:"skills" json:"skills"`
	Emotional   EmotionalProfile   `mapstructure:"emotional" json:"emotional"`
	CareerGoals []string           `mapstructure:"career-goals" json:"career_goals,omitempty"`
}

type Opportunity struct {
	ID                  string            `mapstructure:"id" json:"id"`
	Title               string            `mapstructure:"title" json:"title"`
	Company             string            `mapstructure:"company" json:"company"`
	RequiredSkills      []string          `mapstructure:"required-skills" json:"required_skills,omitempty"`
	Environment         WorkEnvironment   `mapstructure:"environment" json:"environment"`
	CultureValues       []string          `mapstructure:"culture-values" json:"culture_values,omitempty"`
	PersonalityFit      []PersonalityType `mapstructure:"personality-fit" json:"personality_fit,omitempty"`
	GrowthOpportunities []string          `mapstructure:"growth-opportunities" json:"growth_opportunities,omitempty"`
	StressLevel         float64           `mapstructure:"stress-level" json:"stress_level"`
}
