package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogEntry_Stamp(t *testing.T) {
	now := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	t.Run("fills missing id and time", func(t *testing.T) {
		var e LogEntry
		e.Stamp(now)
		assert.False(t, e.ID.IsZero())
		assert.Equal(t, now, e.Timestamp)
	})

	t.Run("keeps existing values", func(t *testing.T) {
		id := primitive.NewObjectID()
		earlier := now.Add(-time.Hour)
		e := LogEntry{ID: id, Timestamp: earlier}
		e.Stamp(now)
		assert.Equal(t, id, e.ID)
		assert.Equal(t, earlier, e.Timestamp)
	})
}

func TestLogEntry_IsAudit(t *testing.T) {
	assert.False(t, (&LogEntry{Message: "HTTP request"}).IsAudit())
	assert.True(t, (&LogEntry{ActionType: "convert_quote"}).IsAudit())
}

func TestActivityFilter_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         ActivityFilter
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", in: ActivityFilter{}, wantLimit: DefaultActivityLimit},
		{name: "kept", in: ActivityFilter{Limit: 20, Offset: 40}, wantLimit: 20, wantOffset: 40},
		{name: "capped", in: ActivityFilter{Limit: 10000}, wantLimit: MaxActivityLimit},
		{name: "negative", in: ActivityFilter{Limit: -1, Offset: -5}, wantLimit: DefaultActivityLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestActivityFilter_Validate(t *testing.T) {
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ActivityFilter{}.Validate())
	assert.NoError(t, ActivityFilter{Since: day}.Validate())
	assert.NoError(t, ActivityFilter{Since: day, Until: day}.Validate())
	assert.ErrorIs(t, ActivityFilter{Since: day, Until: day.Add(-time.Second)}.Validate(), ErrInvalidFilter)
}
