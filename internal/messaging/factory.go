package messaging

import (
	"fmt"
	"strings"

	"github.com/Deepsoni5/kucash-sub001/internal/config"
)

func NewSenderFromConfig(cfg config.Config) (Sender, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.WASenderMode))
	if mode == "" || mode == "stub" {
		return NewStubSender(), nil
	}
	if mode != "http" {
		return nil, fmt.Errorf("invalid WA_SENDER_MODE: %s", cfg.WASenderMode)
	}
	return NewWhatsAppSender(cfg.WAGatewayURL, cfg.WAGatewayToken)
}
