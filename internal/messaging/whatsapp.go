package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WhatsAppSender posts template messages to the WhatsApp gateway. One HTTP
// call per message, no internal retry.
type WhatsAppSender struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewWhatsAppSender(baseURL, token string) (*WhatsAppSender, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("missing gateway url")
	}
	return &WhatsAppSender{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sendRequest struct {
	To       string            `json:"to"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params,omitempty"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

func (s *WhatsAppSender) SendTemplate(ctx context.Context, toMobile, template string, params map[string]string) (string, error) {
	if strings.TrimSpace(toMobile) == "" {
		return "", errors.New("missing recipient")
	}

	payload, err := json.Marshal(sendRequest{To: toMobile, Template: template, Params: params})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("invalid gateway response: %w", err)
	}
	if resp.StatusCode >= 300 {
		if out.Error != "" {
			return "", fmt.Errorf("gateway error: %s", out.Error)
		}
		return "", fmt.Errorf("gateway error: status %d", resp.StatusCode)
	}
	if out.MessageID == "" {
		return "", errors.New("gateway returned no message id")
	}
	return out.MessageID, nil
}
