package recommender

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every lookup failure returned by the engine.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrOpportunityNotFound = fmt.Errorf("opportunity %w", ErrNotFound)
)
