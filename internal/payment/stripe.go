package payment

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeClient creates payment intents through the Stripe API. Stripe
// takes form-encoded requests and amounts in cents.
type StripeClient struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewStripeClient(secretKey, baseURL string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// StripeIntent carries what the frontend needs to confirm the payment.
type StripeIntent struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func (c *StripeClient) CreateIntent(amount float64, currency string) (StripeIntent, error) {
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return StripeIntent{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return StripeIntent{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return StripeIntent{}, fmt.Errorf("stripe intent create: unexpected status %d", res.StatusCode)
	}

	var decoded struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Amount       int64  `json:"amount"`
		Currency     string `json:"currency"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return StripeIntent{}, err
	}

	return StripeIntent{
		IntentID:     decoded.ID,
		ClientSecret: decoded.ClientSecret,
		Amount:       decoded.Amount,
		Currency:     decoded.Currency,
	}, nil
}
