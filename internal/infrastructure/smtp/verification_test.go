package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationEmailBody_ContainsLink(t *testing.T) {
	body := VerificationEmailBody("https://example.com", "abc123")
	assert.Contains(t, body, "https://example.com/verify-email/abc123")
	assert.Contains(t, body, "24時間")
}

func TestVerificationEmailBody_Deterministic(t *testing.T) {
	a := VerificationEmailBody("http://localhost:1420", "def456")
	b := VerificationEmailBody("http://localhost:1420", "def456")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "http://localhost:1420/verify-email/def456")
}
