package api_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/quollsec/scanhub/pkg/scanapi"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for API end-to-end tests.
 * This includes container setup, activation code recovery, and assertions.
 */

const (
	testImageName = "scanhub-api-test:latest"

	testPassword = "Password123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building API Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up API Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAPIContainer starts the API service in a container and returns the
// base URL plus the running container for log scraping.
func setupAPIContainer(t *testing.T) (string, testcontainers.Container, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"API_DATABASE_FILE": "/tmp/scanhub.db",
			"API_PEPPER_FILE":   "/tmp/pepper",
			"API_ISSUER":        "scanhub-api",
			"ENV":               "test",
			"LOG_LEVEL":         "info",
			"LOG_FORMAT":        "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, container, cleanup
}

var otpLogPattern = regexp.MustCompile(`"user_id":"([^"]+)".*?"otp":"(\d{6})"`)

// fetchActivationCode scrapes the service logs for the most recent activation
// code issued to the user. Codes are delivered out-of-band in production; in
// tests the log line stands in for the mail pipeline.
func fetchActivationCode(t *testing.T, container testcontainers.Container, userID string) string {
	t.Helper()
	ctx := context.Background()

	// Logs flush asynchronously; poll briefly before giving up.
	deadline := time.Now().Add(5 * time.Second)
	for {
		reader, err := container.Logs(ctx)
		require.NoError(t, err)

		raw, err := io.ReadAll(reader)
		_ = reader.Close()
		require.NoError(t, err)

		code := ""
		for _, match := range otpLogPattern.FindAllStringSubmatch(string(raw), -1) {
			if match[1] == userID {
				code = match[2]
			}
		}
		if code != "" {
			return code
		}

		if time.Now().After(deadline) {
			t.Fatalf("no activation code found in logs for user %s", userID)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// registerAndActivate registers an account, recovers the activation code from
// the logs and verifies it, returning an authenticated session.
func registerAndActivate(t *testing.T, client *scanapi.Client, container testcontainers.Container, email string) *scanapi.Session {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Register(ctx, scanapi.RegisterRequest{
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err, "Registration should succeed")
	require.False(t, resp.User.IsActive, "Account should start inactive")

	code := fetchActivationCode(t, container, resp.User.ID)

	session, err := client.VerifyOTP(ctx, email, code)
	require.NoError(t, err, "OTP verification should succeed")
	require.True(t, session.User.IsActive)

	return session
}

// assertAPIError checks that err is a typed API error with the given status.
func assertAPIError(t *testing.T, err error, statusCode int) *scanapi.APIError {
	t.Helper()
	require.Error(t, err)

	apiErr, ok := err.(*scanapi.APIError)
	require.True(t, ok, "error should be a typed API error, got: %v", err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	return apiErr
}
