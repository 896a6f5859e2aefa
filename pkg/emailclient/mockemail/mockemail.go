package mockemail

import (
	"bytes"
	"errors"
	"sync"
)

type SentEmail struct {
	Subject    string
	Body       string
	From       string
	Recipients []string
}

// MockEmailClient records every send so tests can assert on delivery.
// Set FailWith to force delivery errors.
type MockEmailClient struct {
	mu       sync.Mutex
	Sent     []SentEmail
	FailWith error
}

var ErrForcedFailure = errors.New("forced email failure")

func NewMockEmailClient() *MockEmailClient {
	return &MockEmailClient{}
}

func (m *MockEmailClient) SendEmailText(subject, data, from string, recipients []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Sent = append(m.Sent, SentEmail{
		Subject:    subject,
		Body:       data,
		From:       from,
		Recipients: recipients,
	})
	return nil
}

func (m *MockEmailClient) SendEmailHTML(subject string, data *bytes.Buffer, from string, recipients []string) error {
	return m.SendEmailText(subject, data.String(), from, recipients)
}
