package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func authenticatedWith(scopes ...string) Claims {
	return Claims{
		Authenticated: true,
		Values:        map[string][]string{ClaimScope: scopes},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		claims Claims
		want   bool
	}{
		{
			name:   "author scope satisfies author policy",
			policy: PolicyAuthor,
			claims: authenticatedWith(ScopeAuthor),
			want:   true,
		},
		{
			name:   "admin scope satisfies admin policy",
			policy: PolicyAdmin,
			claims: authenticatedWith(ScopeAdmin),
			want:   true,
		},
		{
			name:   "author scope does not satisfy admin policy",
			policy: PolicyAdmin,
			claims: authenticatedWith(ScopeAuthor),
			want:   false,
		},
		{
			name:   "admin scope does not imply author",
			policy: PolicyAuthor,
			claims: authenticatedWith(ScopeAdmin),
			want:   false,
		},
		{
			name:   "unauthenticated caller always denied",
			policy: PolicyAdmin,
			claims: Claims{Values: map[string][]string{ClaimScope: {ScopeAdmin}}},
			want:   false,
		},
		{
			name:   "unknown policy denied",
			policy: "Moderator",
			claims: authenticatedWith(ScopeAdmin),
			want:   false,
		},
		{
			name:   "empty claim set denied",
			policy: PolicyAuthor,
			claims: Claims{Authenticated: true},
			want:   false,
		},
		{
			name:   "multiple scopes pass when one matches",
			policy: PolicyAuthor,
			claims: authenticatedWith(ScopeAdmin, ScopeAuthor),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.policy, tt.claims))
		})
	}
}

func TestHasClaim(t *testing.T) {
	claims := authenticatedWith(ScopeAuthor)

	assert.True(t, claims.HasClaim(ClaimScope, ScopeAuthor))
	assert.False(t, claims.HasClaim(ClaimScope, ScopeAdmin))
	assert.False(t, claims.HasClaim("email", "x@y.com"))
}
