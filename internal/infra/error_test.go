//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		kind     []RepositoryErrorKind
		wantKind RepositoryErrorKind
	}{
		{name: "defaults to db failure", kind: nil, wantKind: KindDBFailure},
		{name: "not found", kind: []RepositoryErrorKind{KindNotFound}, wantKind: KindNotFound},
		{name: "duplicate key", kind: []RepositoryErrorKind{KindDuplicateKey}, wantKind: KindDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("load registration", cause, tt.kind...)

			assert.True(t, IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), "load registration")
		})
	}
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("tx: %w", WrapRepoErr("registration not found", nil, KindNotFound))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindDBFailure))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}
