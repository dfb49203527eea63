package auth

import (
	"testing"
	"time"
)

func TestJWTMintAndParse(t *testing.T) {
	m := NewJWTManager("issuer", "aud", "secret")
	tok, err := m.Mint("u1", RoleAgent, "s1", "access", 5*time.Minute)
	if err != nil {
		t.Fatalf("mint error: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != "u1" || claims.SessionID != "s1" || claims.Type != "access" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Role != RoleAgent {
		t.Fatalf("expected agent role, got %q", claims.Role)
	}
}

func TestJWTParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewJWTManager("issuer", "aud", "secret-a").Mint("u1", RoleCustomer, "s1", "access", 5*time.Minute)
	if err != nil {
		t.Fatalf("mint error: %v", err)
	}
	if _, err := NewJWTManager("issuer", "aud", "secret-b").Parse(tok); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestJWTParseRejectsWrongIssuerOrAudience(t *testing.T) {
	tok, err := NewJWTManager("issuer", "aud", "secret").Mint("u1", RoleCustomer, "s1", "access", 5*time.Minute)
	if err != nil {
		t.Fatalf("mint error: %v", err)
	}
	if _, err := NewJWTManager("other-issuer", "aud", "secret").Parse(tok); err == nil {
		t.Fatalf("expected issuer rejection")
	}
	if _, err := NewJWTManager("issuer", "other-aud", "secret").Parse(tok); err == nil {
		t.Fatalf("expected audience rejection")
	}
}

func TestJWTParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("issuer", "aud", "secret")
	tok, err := m.Mint("u1", RoleCustomer, "s1", "access", -time.Minute)
	if err != nil {
		t.Fatalf("mint error: %v", err)
	}
	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected expiry rejection")
	}
}
