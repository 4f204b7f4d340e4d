package payment

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payment_intents" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("amount") != "145000" {
			t.Fatalf("expected amount 145000 cents, got %s", r.PostForm.Get("amount"))
		}
		if r.PostForm.Get("currency") != "usd" {
			t.Fatalf("expected usd default, got %s", r.PostForm.Get("currency"))
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"pi_123","client_secret":"pi_123_secret","amount":145000,"currency":"usd"}`)
	}))
	defer server.Close()

	client := NewStripeClient("sk_test", server.URL)
	intent, err := client.CreateIntent(1450, "")
	require.NoError(t, err)
	require.Equal(t, "pi_123", intent.IntentID)
	require.Equal(t, "pi_123_secret", intent.ClientSecret)
	require.Equal(t, int64(145000), intent.Amount)
	require.Equal(t, "usd", intent.Currency)
}

// 19.99*100 lands below 1999 in float64; the cents conversion must round.
func TestCreateIntentRoundsToWholeCents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "1999", r.PostForm.Get("amount"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"pi_round","client_secret":"pi_round_secret","amount":1999,"currency":"usd"}`)
	}))
	defer server.Close()

	client := NewStripeClient("sk_test", server.URL)
	intent, err := client.CreateIntent(19.99, "")
	require.NoError(t, err)
	require.Equal(t, int64(1999), intent.Amount)
}
