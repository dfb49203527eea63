package auth

import "testing"

func TestGenerateOTPCodeShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateOTPCode()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
	}
}

func TestHashOTPCodeBindsMobile(t *testing.T) {
	a := HashOTPCode("+919000000001", "123456")
	if a != HashOTPCode("+91 90000 00001", "123456") {
		t.Fatalf("hash must be stable across mobile formatting")
	}
	if a == HashOTPCode("+919000000002", "123456") {
		t.Fatalf("same code on another mobile must hash differently")
	}
	if a == HashOTPCode("+919000000001", "654321") {
		t.Fatalf("different codes must hash differently")
	}
}

func TestNormalizeMobile(t *testing.T) {
	cases := map[string]string{
		"+91 90000-00001":  "+919000000001",
		"9000000001":       "+919000000001",
		"(+91) 9000000001": "+919000000001",
		"  +14155550100 ":  "+14155550100",
		"12345":            "12345",
	}
	for in, want := range cases {
		if got := NormalizeMobile(in); got != want {
			t.Fatalf("NormalizeMobile(%q) = %q, want %q", in, got, want)
		}
	}
}
