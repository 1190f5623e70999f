//go:build unit

package registration_test

import (
	"regexp"
	"testing"

	"event-registration/internal/domain/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^TOUR-[A-Z0-9]{6}$`)

func TestRandomCodeGenerator_Format(t *testing.T) {
	g := registration.NewRandomCodeGenerator()
	id, err := g.Generate("TOUR")
	require.NoError(t, err)
	assert.Regexp(t, codePattern, id)
}

func TestRandomCodeGenerator_NoCollisions(t *testing.T) {
	const n = 10_000
	g := registration.NewRandomCodeGenerator()
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		id, err := g.Generate("TOUR")
		require.NoError(t, err)
		require.Regexp(t, codePattern, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s after %d draws", id, i)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
