package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWhatsAppSenderSendsTemplate(t *testing.T) {
	var gotAuth string
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(sendResponse{MessageID: "m-1"})
	}))
	defer srv.Close()

	sender, err := NewWhatsAppSender(srv.URL, "tok")
	if err != nil {
		t.Fatalf("new sender: %v", err)
	}

	id, err := sender.SendTemplate(context.Background(), "+919000000001", "otp_login", map[string]string{"code": "123456"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if id != "m-1" {
		t.Fatalf("message id = %s, want m-1", id)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotBody.To != "+919000000001" || gotBody.Template != "otp_login" || gotBody.Params["code"] != "123456" {
		t.Fatalf("request body = %+v", gotBody)
	}
}

func TestWhatsAppSenderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(sendResponse{Error: "invalid_number"})
	}))
	defer srv.Close()

	sender, _ := NewWhatsAppSender(srv.URL, "")
	if _, err := sender.SendTemplate(context.Background(), "+910", "otp_login", nil); err == nil {
		t.Fatalf("expected gateway error")
	}
}

func TestNewWhatsAppSenderRequiresURL(t *testing.T) {
	if _, err := NewWhatsAppSender("  ", ""); err == nil {
		t.Fatalf("expected error for missing url")
	}
}

func TestStubSender(t *testing.T) {
	s := NewStubSender()
	id, err := s.SendTemplate(context.Background(), "+919000000001", "otp_login", nil)
	if err != nil || id == "" {
		t.Fatalf("stub send = (%q, %v)", id, err)
	}
	if _, err := s.SendTemplate(context.Background(), "", "otp_login", nil); err == nil {
		t.Fatalf("expected error for empty recipient")
	}
}
