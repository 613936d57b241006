//go:build unit

package negotiation_test

import (
	"testing"
	"time"

	"rental-market/internal/domain/negotiation"

	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	accepted := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cd := negotiation.CountdownFrom(accepted)

	tests := []struct {
		name      string
		after     time.Duration
		remaining time.Duration
		warning   bool
		expired   bool
	}{
		{name: "just accepted", after: 0, remaining: 48 * time.Hour},
		{name: "before warning", after: 23 * time.Hour, remaining: 25 * time.Hour},
		{name: "warning starts at 24h left", after: 24 * time.Hour, remaining: 24 * time.Hour, warning: true},
		{name: "last minute", after: 48*time.Hour - time.Minute, remaining: time.Minute, warning: true},
		{name: "deadline", after: 48 * time.Hour, remaining: 0, expired: true},
		{name: "long after", after: 100 * time.Hour, remaining: 0, expired: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := accepted.Add(tt.after)
			assert.Equal(t, tt.remaining, cd.Remaining(now))
			assert.Equal(t, tt.warning, cd.Warning(now))
			assert.Equal(t, tt.expired, cd.Expired(now))
		})
	}

	assert.Equal(t, accepted.Add(24*time.Hour), cd.WarningAt())
	assert.Equal(t, time.Duration(0), negotiation.Remaining(accepted.Add(time.Hour), accepted))
}
