package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestIsMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Member", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/jsmith2/is_member", r.URL.Path)
			assert.Equal(t, "secret-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": {"is_member": true}}`))
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		ok, err := client.IsMember(ctx, "jsmith2")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Not a member", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": {"is_member": false}}`))
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		ok, err := client.IsMember(ctx, "nobody")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Service error reads as not a member", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		ok, err := client.IsMember(ctx, "jsmith2")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Unreachable service reads as not a member", func(t *testing.T) {
		client := NewIdentityClient("http://127.0.0.1:1", "secret-token", 100*time.Millisecond, logger.NewNoopLogger())

		ok, err := client.IsMember(ctx, "jsmith2")

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid session", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/session/tok123", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token": "tok123", "user": {"name": "jsmith2"}}`))
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		netid, err := client.ResolveSession(ctx, "tok123")

		require.NoError(t, err)
		assert.Equal(t, "jsmith2", netid)
	})

	t.Run("Unknown token", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		netid, err := client.ResolveSession(ctx, "expired")

		assert.Empty(t, netid)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Response without token is rejected", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user": {"name": "jsmith2"}}`))
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		netid, err := client.ResolveSession(ctx, "tok123")

		assert.Empty(t, netid)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestIsGroupMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Group member", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/groups/committees/top4", r.URL.Path)
			assert.Equal(t, "jsmith2", r.URL.Query().Get("isMember"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"isValid": true}`))
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		ok, err := client.IsGroupMember(ctx, "jsmith2", "top4")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Service error reads as not in the group", func(t *testing.T) {
		server := newIdentityTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		client := NewIdentityClient(server.URL, "secret-token", time.Second, logger.NewNoopLogger())

		ok, err := client.IsGroupMember(ctx, "jsmith2", "admin")

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
