package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSender(t *testing.T) {
	assert.True(t, ValidSender("orders@uvicorn.in"))
	assert.True(t, ValidSender("Uvicorn Orders <orders@uvicorn.in>"))
	assert.False(t, ValidSender(""))
	assert.False(t, ValidSender("not-an-address"))
	assert.False(t, ValidSender("missing@tld"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a@b.co", Normalize("a@b.co"))
	assert.Equal(t, "a@b.co", Normalize("  Name <a@b.co>  "))
	assert.Equal(t, "", Normalize("nope"))
	assert.Equal(t, "", Normalize(""))
}

func TestNewSenderPolicy_FallsBackToSandboxSender(t *testing.T) {
	p := NewSenderPolicy("garbage", "re_123", false, "owner@x.co")
	assert.Equal(t, DefaultFrom, p.From)
	assert.True(t, p.SandboxSender())

	p = NewSenderPolicy("Shop <orders@uvicorn.in>", "re_123", false, "owner@x.co")
	assert.Equal(t, "Shop <orders@uvicorn.in>", p.From)
	assert.False(t, p.SandboxSender())
}

func TestKeyLooksValid(t *testing.T) {
	assert.True(t, NewSenderPolicy("", "re_abc", false, "").KeyLooksValid())
	assert.False(t, NewSenderPolicy("", "", false, "").KeyLooksValid())
	assert.False(t, NewSenderPolicy("", "sk_wrong", false, "").KeyLooksValid())
}

func TestCanSend_SandboxSenderAllowsAnyone(t *testing.T) {
	p := NewSenderPolicy("", "re_abc", false, "owner@x.co")

	ok, reason := p.CanSend("stranger@example.com", p.KeyLooksValid())
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestCanSend_InvalidKeyBlocksEverything(t *testing.T) {
	p := NewSenderPolicy("", "bogus", false, "owner@x.co")

	ok, reason := p.CanSend("anyone@example.com", p.KeyLooksValid())
	assert.False(t, ok)
	assert.Contains(t, reason, "RESEND_API_KEY")
}

func TestCanSend_VerifiedDomainNeedsOverride(t *testing.T) {
	p := NewSenderPolicy("Shop <orders@uvicorn.in>", "re_abc", false, "owner@x.co")

	ok, reason := p.CanSend("stranger@example.com", true)
	assert.False(t, ok)
	assert.Contains(t, reason, "ALLOW_ALL_EMAILS")

	// the allow-listed test inbox still works
	ok, _ = p.CanSend("Owner <owner@x.co>", true)
	assert.True(t, ok)

	// and the override opens it up
	p = NewSenderPolicy("Shop <orders@uvicorn.in>", "re_abc", true, "owner@x.co")
	ok, _ = p.CanSend("stranger@example.com", true)
	assert.True(t, ok)
}

func TestCanSend_DowngradedKeyWinsOverSandbox(t *testing.T) {
	p := NewSenderPolicy("", "re_abc", true, "owner@x.co")

	// caller learned mid-checkout that the key is bad
	ok, reason := p.CanSend("stranger@example.com", false)
	assert.False(t, ok)
	assert.Contains(t, reason, "missing or invalid")
}
