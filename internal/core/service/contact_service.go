package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// ContactService handles public contact-form intake. Messages upsert by email
// so a visitor resubmitting replaces their earlier message.
type ContactService struct {
	contacts   ports.ContactRepository
	mail       ports.MailQueue
	adminEmail string
}

func NewContactService(contacts ports.ContactRepository, mail ports.MailQueue, adminEmail string) *ContactService {
	return &ContactService{contacts: contacts, mail: mail, adminEmail: adminEmail}
}

func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, domain.ErrValidation
	}
	msg.UpdatedAt = time.Now().UTC()

	saved, err := s.contacts.UpsertByEmail(ctx, msg)
	if err != nil {
		return nil, err
	}

	// Admin notification is best effort; the message is already stored.
	s.mail.Enqueue(ports.Email{
		To:       s.adminEmail,
		Subject:  fmt.Sprintf("New contact message from %s", saved.Name),
		TextBody: fmt.Sprintf("%s <%s> wrote:\n\n%s", saved.Name, saved.Email, saved.Message),
		HTMLBody: fmt.Sprintf(
			`<div style="font-family: Arial, sans-serif;"><h3>New contact message</h3><p><strong>%s</strong> &lt;%s&gt;</p><p>%s</p></div>`,
			saved.Name, saved.Email, saved.Message,
		),
	})

	return saved, nil
}

func (s *ContactService) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contacts.FindAll(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contacts.DeleteByID(ctx, id)
}
