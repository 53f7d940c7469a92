package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/internal/api/store/drivers/sqlite"
	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/quollsec/scanhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file so password hashing works in tests
	pepperPath := filepath.Join(os.TempDir(), "scanhub-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore returns an in-memory store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newTokenService builds a TokenService with a fresh ephemeral signer.
func newTokenService(t *testing.T, st store.Store) *TokenService {
	t.Helper()

	signer, err := jwtx.NewEdDSASigner("test-key")
	require.NoError(t, err)

	return &TokenService{
		Store:  st,
		Signer: signer,
		Issuer: "scanhub-test",
		TTL:    time.Minute,
	}
}

// registerUser runs a registration and returns the created user.
func registerUser(t *testing.T, st store.Store, email, password string) domain.User {
	t.Helper()

	svc := &RegisterService{Store: st}
	user, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

