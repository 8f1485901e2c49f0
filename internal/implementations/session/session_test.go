package session

import (
	"testing"

	"newsdesk/internal/core/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokensAreDistinctUUIDs(t *testing.T) {
	generator := NewUUID()
	tokens := make(map[user.SessionToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateToken()
		_, err := uuid.Parse(string(token))
		require.NoError(t, err)
		_, exists := tokens[token]
		require.False(t, exists, "token %v generated twice", token)
		tokens[token] = struct{}{}
	}
}
