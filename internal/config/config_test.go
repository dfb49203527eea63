package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8090" {
		t.Fatalf("default port = %s, want 8090", cfg.Port)
	}
	if cfg.Addr() != ":8090" {
		t.Fatalf("addr = %s, want :8090", cfg.Addr())
	}
	if cfg.OTPTTL != 5*time.Minute {
		t.Fatalf("default otp ttl = %v, want 5m", cfg.OTPTTL)
	}
	if cfg.WASenderMode != "stub" {
		t.Fatalf("default sender mode = %s, want stub", cfg.WASenderMode)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("OTP_MAX_ATTEMPTS", "3")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()
	if cfg.Port != "9001" {
		t.Fatalf("port = %s, want 9001", cfg.Port)
	}
	if cfg.OTPMaxAttempts != 3 {
		t.Fatalf("otp max attempts = %d, want 3", cfg.OTPMaxAttempts)
	}
	if cfg.JWTAccessTTL != 5*time.Minute {
		t.Fatalf("access ttl = %v, want 5m", cfg.JWTAccessTTL)
	}
	if !cfg.CookieSecure {
		t.Fatalf("cookie secure should be true")
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("JWT_REFRESH_TTL", "forever")

	cfg := Load()
	if cfg.DBMaxConns != 25 {
		t.Fatalf("db max conns = %d, want fallback 25", cfg.DBMaxConns)
	}
	if cfg.JWTRefreshTTL != 7*24*time.Hour {
		t.Fatalf("refresh ttl = %v, want fallback 168h", cfg.JWTRefreshTTL)
	}
}
