package emailclient

import (
	"bytes"
)

// DEFAULTS
const (
	DefaultEmailFrom = "notifications@boards.app"
)

type EmailClient interface {
	SendEmailText(subject, data, from string, recipients []string) error
	SendEmailHTML(subject string, data *bytes.Buffer, from string, recipients []string) error
}
