package services

import (
	"context"
	"fmt"
	"log"

	"devportal/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendAccountInvite sends the invitation email using the "account_invite" template.
func (s *emailService) SendAccountInvite(ctx context.Context, data *domain.AccountInviteEmailData) error {
	if data == nil {
		return fmt.Errorf("account invite data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("account_invite", data)
	if err != nil {
		return fmt.Errorf("failed to render account_invite template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send account invite email: %w", err)
	}
	log.Printf("[EMAIL] Account invite sent to %s", data.Email)
	return nil
}
