package ai

import (
	"context"

	"github.com/spigell/fitpath/internal/profile"
	"github.com/spigell/fitpath/internal/recommender"
)

// Advice is a narrative note explaining a recommendation to the user.
type Advice struct {
	Text string
	Raw  string
}

type Advisor interface {
	Advise(ctx context.Context, user *profile.User, rec recommender.Recommendation, learningPath []string) (*Advice, error)
}
