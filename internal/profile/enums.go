package profile

import (
	"fmt"
	"strings"
)

// PersonalityType is a closed set of personality tags shared by users and opportunities.
type PersonalityType string

const (
	Introvert  PersonalityType = "introvert"
	Extrovert  PersonalityType = "extrovert"
	Analytical PersonalityType = "analytical"
	Creative   PersonalityType = "creative"
	Structured PersonalityType = "structured"
	Flexible   PersonalityType = "flexible"
)

// PersonalityTypes lists every known personality type.
var PersonalityTypes = []PersonalityType{Introvert, Extrovert, Analytical, Creative, Structured, Flexible}

func (p PersonalityType) String() string { return string(p) }

func (p PersonalityType) Valid() bool {
	switch p {
	case Introvert, Extrovert, Analytical, Creative, Structured, Flexible:
		return true
	}
	return false
}

func (p *PersonalityType) UnmarshalText(text []byte) error {
	v := PersonalityType(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("unknown personality type %q", string(text))
	}
	*p = v
	return nil
}

// WorkEnvironment is a closed set of work environment categories.
type WorkEnvironment string

const (
	Remote    WorkEnvironment = "remote"
	Office    WorkEnvironment = "office"
	Hybrid    WorkEnvironment = "hybrid"
	Startup   WorkEnvironment = "startup"
	Corporate WorkEnvironment = "corporate"
)

// WorkEnvironments lists every known work environment.
var WorkEnvironments = []WorkEnvironment{Remote, Office, Hybrid, Startup, Corporate}

func (w WorkEnvironment) String() string { return string(w) }

func (w WorkEnvironment) Valid() bool {
	switch w {
	case Remote, Office, Hybrid, Startup, Corporate:
		return true
	}
	return false
}

// Label returns a human readable name for reports.
func (w WorkEnvironment) Label() string {
	switch w {
	case Remote:
		return "Remote"
	case Office:
		return "Office"
	case Hybrid:
		return "Hybrid"
	case Startup:
		return "Startup"
	case Corporate:
		return "Corporate"
	default:
		return "Unknown"
	}
}

func (w *WorkEnvironment) UnmarshalText(text []byte) error {
	v := WorkEnvironment(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("unknown work environment %q", string(text))
	}
	*w = v
	return nil
}
