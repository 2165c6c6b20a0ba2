package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AccountInviteEmailData holds data for the account invitation email.
type AccountInviteEmailData struct {
	Email     string
	Inviter   string
	PortalURL string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAccountInvite(ctx context.Context, data *AccountInviteEmailData) error
}
