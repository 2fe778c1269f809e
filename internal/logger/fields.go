package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldUserID        = "user_id"
	FieldOpportunityID = "opportunity_id"
)

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// IDs returns the user and opportunity fields. Blank IDs are left out so
// registry events carry only the side they are about.
func IDs(userID, opportunityID string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if id := strings.TrimSpace(userID); id != "" {
		fields = append(fields, zap.String(FieldUserID, id))
	}
	if id := strings.TrimSpace(opportunityID); id != "" {
		fields = append(fields, zap.String(FieldOpportunityID, id))
	}
	return fields
}

// ForMatch scopes log to one user and opportunity pair.
func ForMatch(log *zap.Logger, userID, opportunityID string) *zap.Logger {
	log = OrNop(log)
	if fields := IDs(userID, opportunityID); len(fields) > 0 {
		return log.With(fields...)
	}
	return log
}
