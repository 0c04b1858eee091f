//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cuponx-backend/internal/infra/notify"
	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMailer_Send(t *testing.T) {
	mail := shared.Mail{To: "ana@example.com", Subject: "Verifica tu cuenta - CuponX", Text: "hola"}

	t.Run("success: posts message with auth header", func(t *testing.T) {
		var got map[string]string
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/send", r.URL.Path)
			auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		m := notify.NewHTTPMailer(config.MailConfig{APIURL: srv.URL, APIKey: "key-1", From: "CuponX <no-reply@cuponx.local>", Timeout: time.Second})
		require.NoError(t, m.Send(context.Background(), mail))

		assert.Equal(t, "Bearer key-1", auth)
		assert.Equal(t, "ana@example.com", got["to"])
		assert.Equal(t, "CuponX <no-reply@cuponx.local>", got["from"])
		assert.Equal(t, "Verifica tu cuenta - CuponX", got["subject"])
	})

	t.Run("error: client error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"bad recipient"}`))
		}))
		defer srv.Close()

		m := notify.NewHTTPMailer(config.MailConfig{APIURL: srv.URL, Timeout: time.Second, RetryCount: 2})
		err := m.Send(context.Background(), mail)

		require.Error(t, err)
		assert.True(t, errs.Is(err, notify.ErrMailRejected))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("error: server error is retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		m := notify.NewHTTPMailer(config.MailConfig{APIURL: srv.URL, Timeout: time.Second, RetryCount: 2})
		err := m.Send(context.Background(), mail)

		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestNewMailer_FallsBackToConsole(t *testing.T) {
	m := notify.NewMailer(config.MailConfig{})
	_, ok := m.(*notify.ConsoleMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), shared.Mail{To: "x@example.com"}))
}
