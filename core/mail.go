package core

import (
	"context"
	"net/mail"
	"strings"
)

type (
	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Subject string
		Body    string // text/plain
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages one after the other and stops at the first failure.
		SendMessages(ctx context.Context, messages ...*EmailMessage) error
	}
)

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.Body != "" }

// ParseAddressList parses a comma separated list of addresses, skipping blanks.
func ParseAddressList(list string) ([]mail.Address, error) {
	addrs := make([]mail.Address, 0)
	for _, raw := range strings.Split(list, ",") {
		raw = CleanString(raw, true /* lower */)
		if raw == "" {
			continue
		}
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, *addr)
	}
	return addrs, nil
}
