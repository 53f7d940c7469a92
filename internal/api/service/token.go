package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/jwtx"
)

// TokenService mints access tokens for authenticated users.
type TokenService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// IssueAccessToken signs a token for the user. The tenant claim is best
// effort; a user without a tenant still gets a token.
func (s *TokenService) IssueAccessToken(ctx context.Context, user domain.User, amr []string) (string, error) {
	tenantID := ""
	if tenant, err := s.Store.Tenants().GetTenantByUserID(ctx, user.ID); err == nil {
		tenantID = tenant.ID
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		user.ID, user.Username, tenantID,
		amr, s.Issuer, ttl, time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return token, nil
}
