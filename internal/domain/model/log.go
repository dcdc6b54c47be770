package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a stored request line or, when ActionType is set, an audit
// record of something that priced or changed data.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	Actor      string             `bson:"actor,omitempty" json:"actor,omitempty"`
	ActionType string             `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// IsAudit reports whether the entry records an action.
func (e *LogEntry) IsAudit() bool {
	return e.ActionType != ""
}

// Stamp fills the id and timestamp of an entry about to be stored.
func (e *LogEntry) Stamp(now time.Time) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
}

// Activity page sizes.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 500
)

// ErrInvalidFilter is returned for an activity filter that can match nothing
// by construction.
var ErrInvalidFilter = errors.New("invalid activity filter")

// ActivityFilter selects stored log entries. Empty fields match everything.
// Results are returned newest first.
type ActivityFilter struct {
	Actor     string
	Action    string
	RequestID string
	Level     string
	// AuditOnly drops plain request lines.
	AuditOnly bool
	Since     time.Time
	Until     time.Time
	Limit     int
	Offset    int
}

// Normalize clamps the page bounds.
func (f ActivityFilter) Normalize() ActivityFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultActivityLimit
	case f.Limit > MaxActivityLimit:
		f.Limit = MaxActivityLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Validate rejects a time window that ends before it starts.
func (f ActivityFilter) Validate() error {
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Until.Before(f.Since) {
		return ErrInvalidFilter
	}
	return nil
}

// ActivityPage is one page of log entries and the number of entries the
// filter matches overall.
type ActivityPage struct {
	Entries []LogEntry `json:"entries"`
	Total   int64      `json:"total"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
}
