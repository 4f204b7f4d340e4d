package config

import "os"

// Config collects every environment-driven setting the app needs.
// Values are read once at startup; nothing mutates them afterwards.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// Hosted-checkout provider (Razorpay-compatible REST API).
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string

	// Client-confirmed intent provider (Stripe-compatible REST API).
	StripeSecretKey string
	StripeBaseURL   string

	// Optional RabbitMQ URL for order-confirmation events. Empty disables
	// the notifier.
	AMQPURL      string
	AMQPExchange string
}

func Load() Config {
	return Config{
		Addr:              getEnv("ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayBaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		StripeBaseURL:     getEnv("STRIPE_BASE_URL", "https://api.stripe.com/v1"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		AMQPExchange:      getEnv("AMQP_EXCHANGE", "storefront.events"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
