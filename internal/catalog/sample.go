package catalog

import "github.com/spigell/fitpath/internal/profile"

// Sample returns a small built-in data set for trying the engine without a config file.
func Sample() *Catalog {
	return &Catalog{
		Users: []*profile.User{
			{
				ID: "user1",
				Personality: profile.PersonalityProfile{
					BigFive: map[string]float64{
						"openness":          0.8,
						"conscientiousness": 0.7,
						"extraversion":      0.6,
						"agreeableness":     0.75,
						"neuroticism":       0.3,
					},
					MBTI:                  "INFJ",
					WorkValues:            []string{"creativity", "innovation", "work-life-balance"},
					PreferredEnvironments: []profile.WorkEnvironment{profile.Remote, profile.Hybrid},
					Types:                 []profile.PersonalityType{profile.Creative, profile.Introvert},
				},
				Skills: profile.SkillProfile{
					Technical:       []string{"python", "data analysis", "machine learning"},
					Soft:            []string{"communication", "problem-solving"},
					ExperienceLevel: 3,
					Certifications:  []string{"AWS Certified"},
				},
				Emotional: profile.EmotionalProfile{
					StressTolerance:     0.7,
					WorkLifeBalance:     0.8,
					GrowthMindset:       0.9,
					EmotionalStability:  0.8,
					SatisfactionHistory: []float64{0.8, 0.7, 0.9},
				},
				CareerGoals: []string{"data scientist", "team lead"},
			},
		},
		Opportunities: []*profile.Opportunity{
			{
				ID:                  "job1",
				Title:               "Senior Data Scientist",
				Company:             "Tech Corp",
				RequiredSkills:      []string{"python", "machine learning", "leadership"},
				Environment:         profile.Hybrid,
				CultureValues:       []string{"innovation", "work-life-balance"},
				PersonalityFit:      []profile.PersonalityType{profile.Analytical, profile.Creative},
				GrowthOpportunities: []string{"management track", "research projects"},
				StressLevel:         0.6,
			},
			{
				ID:                  "job2",
				Title:               "Machine Learning Engineer",
				Company:             "Remote Labs",
				RequiredSkills:      []string{"python", "machine learning", "mlops", "communication"},
				Environment:         profile.Remote,
				CultureValues:       []string{"autonomy", "innovation"},
				PersonalityFit:      []profile.PersonalityType{profile.Introvert, profile.Analytical},
				GrowthOpportunities: []string{"staff engineer track"},
				StressLevel:         0.5,
			},
			{
				ID:                  "job3",
				Title:               "Analytics Team Lead",
				Company:             "Big Retail",
				RequiredSkills:      []string{"sql", "leadership", "data analysis", "stakeholder management"},
				Environment:         profile.Corporate,
				CultureValues:       []string{"stability"},
				PersonalityFit:      []profile.PersonalityType{profile.Structured, profile.Extrovert},
				GrowthOpportunities: []string{"head of analytics"},
				StressLevel:         0.8,
			},
		},
		Resources: []Resource{
			{Skill: "leadership", Resource: "Leading Technical Teams (course)"},
			{Skill: "mlops", Resource: "MLOps Specialization (course)"},
			{Skill: "sql", Resource: "SQL for Data Analysis (interactive tutorial)"},
		},
	}
}
