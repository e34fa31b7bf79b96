package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AdminConfig struct {
	// AccessKey is a shared static credential compared for equality.
	// It is not a security boundary.
	AccessKey string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type BusinessConfig struct {
	// GateDelay is the simulated pincode-verification latency.
	GateDelay time.Duration
	// PaymentDelay is the simulated payment-processing latency.
	PaymentDelay time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	gateDelayMs, _ := strconv.Atoi(getEnv("GATE_DELAY_MS", "800"))
	paymentDelayMs, _ := strconv.Atoi(getEnv("PAYMENT_DELAY_MS", "2000"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Admin: AdminConfig{
			AccessKey: getEnv("ADMIN_ACCESS_KEY", "admin"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Business: BusinessConfig{
			GateDelay:    time.Duration(gateDelayMs) * time.Millisecond,
			PaymentDelay: time.Duration(paymentDelayMs) * time.Millisecond,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
