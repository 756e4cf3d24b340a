package main

import (
	"fmt"
	"net/mail"
	"strings"
)

// recipient is a chip carrying a parsed e-mail address. Two recipients are
// the same chip when both name and address match.
type recipient struct {
	name  string
	email string
}

func (r recipient) Text() string {
	if r.name != "" {
		return r.name
	}
	return r.email
}

func (r recipient) String() string {
	if r.name == "" {
		return r.email
	}
	return fmt.Sprintf("%s <%s>", r.name, r.email)
}

// parseRecipient accepts "addr@example.com" or "Name <addr@example.com>".
func parseRecipient(text string) (recipient, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return recipient{}, fmt.Errorf("address is empty")
	}
	addr, err := mail.ParseAddress(text)
	if err != nil {
		return recipient{}, fmt.Errorf("%q is not an e-mail address", text)
	}
	return recipient{name: addr.Name, email: strings.ToLower(addr.Address)}, nil
}
