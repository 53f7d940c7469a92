package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/stretchr/testify/require"
)

func TestUnauthorizedAccess(t *testing.T) {
	baseURL, _, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		session := client.NewSessionFromToken("")

		_, err := session.Me(ctx)
		assertAPIError(t, err, http.StatusUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		session := client.NewSessionFromToken("not.a.jwt")

		_, err := session.ListProjects(ctx)
		assertAPIError(t, err, http.StatusUnauthorized)
	})

	t.Run("forged token", func(t *testing.T) {
		// Structurally valid JWT signed by a key the service never issued.
		forged := "eyJhbGciOiJFZERTQSIsInR5cCI6IkpXVCJ9." +
			"eyJzdWIiOiJzb21lYm9keSIsImlzcyI6InNjYW5odWItYXBpIn0." +
			strings.Repeat("A", 86)
		session := client.NewSessionFromToken(forged)

		_, err := session.ListTargets(ctx)
		assertAPIError(t, err, http.StatusUnauthorized)
	})
}

func TestMFAEnrollmentFlow(t *testing.T) {
	baseURL, container, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := scanapi.NewClient(baseURL)
	ctx := context.Background()

	session := registerAndActivate(t, client, container, "heidi@example.com")

	enrollment, err := session.EnrollMFA(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.ProvisioningURI, "otpauth://totp/")

	t.Run("wrong code rejected", func(t *testing.T) {
		err := session.ConfirmMFA(ctx, "000000")
		apiErr := assertAPIError(t, err, http.StatusBadRequest)
		require.Equal(t, "Invalid MFA code", apiErr.Detail)
	})

	t.Run("valid code confirms", func(t *testing.T) {
		code, err := totp.GenerateCode(enrollment.Secret, time.Now())
		require.NoError(t, err)

		require.NoError(t, session.ConfirmMFA(ctx, code))
	})
}
