package authz

// User scopes attached to identities as claims and checked by the
// policy table.
const (
	ScopeAuthor = "tsblog.author"
	ScopeAdmin  = "tsblog.admin"
)

// Policy names referenced by route annotations.
const (
	PolicyAuthor = "Author"
	PolicyAdmin  = "Admin"
)

// ClaimScope is the claim key holding a principal's scope.
const ClaimScope = "scope"

// Claims is the claim set of an authenticated caller. Authenticated is
// set only after the bearer token has been verified; a policy never
// passes without it.
type Claims struct {
	Authenticated bool
	Values        map[string][]string
}

// HasClaim reports whether the set contains the key/value pair.
func (c Claims) HasClaim(key, value string) bool {
	for _, v := range c.Values[key] {
		if v == value {
			return true
		}
	}
	return false
}

// policyTable maps each named policy to the single scope claim it
// requires. Closed set: unknown policies always deny. There is no
// hierarchy between policies; Admin does not imply Author.
var policyTable = map[string]string{
	PolicyAuthor: ScopeAuthor,
	PolicyAdmin:  ScopeAdmin,
}

// Evaluate decides whether the claim set satisfies the named policy.
// Pure function: no state, no I/O.
func Evaluate(policyName string, claims Claims) bool {
	if !claims.Authenticated {
		return false
	}

	requiredScope, ok := policyTable[policyName]
	if !ok {
		return false
	}

	return claims.HasClaim(ClaimScope, requiredScope)
}
