package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devportal/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.name = name
	if f.err != nil {
		return "", "", "", f.err
	}
	d := data.(*domain.AccountInviteEmailData)
	return "You're invited", "<p>" + d.PortalURL + "</p>", d.PortalURL, nil
}

func TestEmailService_SendAccountInvite(t *testing.T) {
	ctx := context.Background()
	data := &domain.AccountInviteEmailData{Email: "u@example.com", PortalURL: "https://portal"}

	t.Run("renders and sends", func(t *testing.T) {
		mailer, renderer := &fakeMailer{}, &fakeRenderer{}
		require.NoError(t, NewEmailService(mailer, renderer).SendAccountInvite(ctx, data))
		assert.Equal(t, "account_invite", renderer.name)
		assert.Equal(t, "u@example.com", mailer.to)
		assert.Equal(t, "You're invited", mailer.subject)
		assert.Equal(t, "https://portal", mailer.text)
	})

	t.Run("nil data", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{}, &fakeRenderer{}).SendAccountInvite(ctx, nil)
		require.Error(t, err)
	})

	t.Run("render failure", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("missing template")}).SendAccountInvite(ctx, data)
		require.ErrorContains(t, err, "failed to render")
	})

	t.Run("send failure", func(t *testing.T) {
		err := NewEmailService(&fakeMailer{err: errors.New("throttled")}, &fakeRenderer{}).SendAccountInvite(ctx, data)
		require.ErrorContains(t, err, "throttled")
	})
}
