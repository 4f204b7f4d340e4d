package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RazorpayClient creates payment orders through the Razorpay Orders API.
// Amounts cross the wire in minor units (paise).
type RazorpayClient struct {
	keyID   string
	secret  string
	baseURL string
	http    *http.Client
}

func NewRazorpayClient(keyID, secret, baseURL string) *RazorpayClient {
	return &RazorpayClient{
		keyID:   keyID,
		secret:  secret,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RazorpayOrder is the subset of the provider response the frontend needs
// to open the checkout widget.
type RazorpayOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

func (c *RazorpayClient) CreateOrder(amount float64, currency string) (RazorpayOrder, error) {
	if currency == "" {
		currency = "INR"
	}

	body, err := json.Marshal(map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  "receipt_" + uuid.New().String(),
	})
	if err != nil {
		return RazorpayOrder{}, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return RazorpayOrder{}, err
	}
	req.SetBasicAuth(c.keyID, c.secret)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return RazorpayOrder{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return RazorpayOrder{}, fmt.Errorf("razorpay order create: unexpected status %d", res.StatusCode)
	}

	var decoded struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return RazorpayOrder{}, err
	}

	return RazorpayOrder{
		OrderID:  decoded.ID,
		Amount:   decoded.Amount,
		Currency: decoded.Currency,
		KeyID:    c.keyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 over
// "<orderId>|<paymentId>" keyed with the API secret, hex encoded. The
// comparison is constant time.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
