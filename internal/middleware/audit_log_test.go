package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditContext(actor string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/pricing/quotes/D-000482/convert", nil)
	c.Set(RequestIDKey, "req-audit")
	if actor != "" {
		c.Set(ActorKey, actor)
	}
	return c
}

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name   string
		action string
		fields map[string]interface{}
		actor  string
	}{
		{
			name:   "with actor",
			action: ActionConvertQuote,
			fields: map[string]interface{}{"quote_ref": "D-000482"},
			actor:  "key-1a2b3c4d",
		},
		{
			name:   "without actor",
			action: ActionCalculateQuote,
			fields: map[string]interface{}{"quantity": 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}

			AuditLog(sink, auditContext(tt.actor), tt.action, "Quote converted to order", tt.fields)

			entries := sink.all()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, "info", entry.Level)
			assert.Equal(t, tt.action, entry.ActionType)
			assert.Equal(t, tt.actor, entry.Actor)
			assert.Equal(t, "req-audit", entry.RequestID)
			assert.Equal(t, http.MethodPost, entry.Method)
			assert.Equal(t, tt.fields, entry.Fields)
			assert.Empty(t, entry.Error)
		})
	}
}

func TestAuditLogError(t *testing.T) {
	sink := &recordingSink{}

	AuditLogError(sink, auditContext("key-ops"), ActionUpdateRateConfig, "Rate configuration update failed",
		errors.New("flyer: no tiers"), map[string]interface{}{"version": 3})

	entries := sink.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "flyer: no tiers", entries[0].Error)
	assert.Equal(t, 3, entries[0].Fields["version"])
}

func TestAuditLog_NilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		AuditLog(nil, auditContext(""), ActionSaveOrder, "Order saved", nil)
		AuditLogError(nil, auditContext(""), ActionSaveOrder, "Order save failed", errors.New("closed"), nil)
	})
}
