//go:build unit

package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		name    string
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{name: "first attempt", attempt: 0, min: 100 * time.Millisecond, max: 120 * time.Millisecond},
		{name: "third attempt", attempt: 2, min: 400 * time.Millisecond, max: 480 * time.Millisecond},
		{name: "negative attempt clamps to zero", attempt: -3, min: 100 * time.Millisecond, max: 120 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				got := Exponential(tt.attempt, base)
				assert.GreaterOrEqual(t, got, tt.min)
				assert.LessOrEqual(t, got, tt.max)
			}
		})
	}
}

func TestExponential_ZeroBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), Exponential(3, 0))
}
