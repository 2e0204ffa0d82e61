package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
	"github.com/vishal1412/PropScan-sub000/internal/metrics"
	"github.com/vishal1412/PropScan-sub000/internal/store"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// LeadService captures prospect inquiries. Leads are append-only: the record
// preserves exactly what the prospect submitted, so no update operation is
// exposed, only delete.
type LeadService struct {
	leads        *store.Collection[*domain.Lead]
	emailService *EmailService
	adminEmail   string
}

// NewLeadService creates a new lead service
func NewLeadService(s store.Store, emailService *EmailService, adminEmail string) *LeadService {
	return &LeadService{
		leads:        store.NewCollection[*domain.Lead](s, "leads"),
		emailService: emailService,
		adminEmail:   adminEmail,
	}
}

// Submit validates and appends a new lead.
func (s *LeadService) Submit(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	log.Printf("[LEAD] Submit request: name=%s, city=%s, source=%s",
		strings.TrimSpace(lead.Name), lead.City, lead.Source)

	fields := map[string]string{}
	if strings.TrimSpace(lead.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(lead.Phone) == "" {
		fields["phone"] = "phone is required"
	} else if !validPhone(lead.Phone) {
		fields["phone"] = "phone must be 10 digits"
	}
	if lead.Email != "" && !validEmail(lead.Email) {
		fields["email"] = "invalid email address"
	}
	if len(fields) > 0 {
		log.Printf("[LEAD] Submit failed: validation error: %v", fields)
		return nil, errors.NewValidation(fields)
	}

	lead.Name = strings.TrimSpace(lead.Name)
	lead.Phone = phoneDigits(lead.Phone)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))

	created, err := s.leads.Append(ctx, lead)
	metrics.RecordStoreOperation("leads", "append", err == nil)
	if err != nil {
		log.Printf("[LEAD] Submit failed: store error: %v", err)
		return nil, err
	}

	log.Printf("[LEAD] Submit successful: id=%s, name=%s", created.ID, created.Name)
	metrics.RecordLeadSubmission()

	// Notify admin asynchronously; a mail failure never fails the submission.
	go func() {
		if err := s.sendLeadNotification(created); err != nil {
			log.Printf("[LEAD] Warning: failed to send notification email: %v", err)
		}
	}()

	return created, nil
}

// ListAll returns every lead.
func (s *LeadService) ListAll(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.All(ctx)
}

// ListByCity returns leads whose city of interest matches (case-insensitive).
func (s *LeadService) ListByCity(ctx context.Context, city string) ([]*domain.Lead, error) {
	want := strings.ToLower(strings.TrimSpace(city))
	return s.leads.Filter(ctx, func(l *domain.Lead) bool {
		return strings.ToLower(l.City) == want
	})
}

// ListBySource returns leads generated by a given page or property.
func (s *LeadService) ListBySource(ctx context.Context, source string) ([]*domain.Lead, error) {
	return s.leads.Filter(ctx, func(l *domain.Lead) bool {
		return l.Source == source
	})
}

// Delete removes a lead, reporting whether anything was removed.
func (s *LeadService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.leads.Delete(ctx, id)
	metrics.RecordStoreOperation("leads", "delete", err == nil)
	if err != nil {
		log.Printf("[LEAD] Delete failed: id=%s: %v", id, err)
		return false, err
	}
	log.Printf("[LEAD] Delete: id=%s removed=%v", id, deleted)
	return deleted, nil
}

func (s *LeadService) sendLeadNotification(lead *domain.Lead) error {
	if !s.emailService.IsEnabled() {
		fmt.Printf("[LEAD] New inquiry from %s (%s)\n", lead.Name, lead.Phone)
		return nil
	}

	subject := fmt.Sprintf("New Lead: %s", lead.Name)

	email := lead.Email
	if email == "" {
		email = "Not provided"
	}
	city := lead.City
	if city == "" {
		city = "Not specified"
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Lead</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #1C5D99;">New Lead</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>City:</strong> %s</p>
            <p><strong>Source:</strong> %s</p>
            <p><strong>Submitted:</strong> %s</p>
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Message:</h3>
            <p style="white-space: pre-wrap;">%s</p>
        </div>
        <p style="color: #64748B; font-size: 14px;">Lead ID: %s</p>
    </div>
</body>
</html>`, lead.Name, lead.Phone, email, city, lead.Source,
		lead.CreatedAt.Format("January 2, 2006 at 3:04 PM"), lead.Message, lead.ID)

	textBody := fmt.Sprintf(`New Lead

Name: %s
Phone: %s
Email: %s
City: %s
Source: %s
Submitted: %s

Message:
%s

Lead ID: %s`, lead.Name, lead.Phone, email, city, lead.Source,
		lead.CreatedAt.Format("January 2, 2006 at 3:04 PM"), lead.Message, lead.ID)

	return s.emailService.SendHTMLEmail(s.adminEmail, subject, htmlBody, textBody)
}
