package gateway

import "context"

// IdentityVerifier is the outbound port to the external identity and
// membership service. Any failure talking to the service (non-200,
// malformed body) is reported as a negative result, not distinguished by
// cause.
type IdentityVerifier interface {
	// IsMember reports whether the netid belongs to a known member
	IsMember(ctx context.Context, netid string) (bool, error)

	// ResolveSession resolves a session token to the netid it was issued
	// for. Returns ErrUnauthorized if the token cannot be resolved.
	ResolveSession(ctx context.Context, token string) (string, error)

	// IsGroupMember reports whether the netid belongs to the named group
	IsGroupMember(ctx context.Context, netid, group string) (bool, error)
}
