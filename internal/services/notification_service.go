package services

import (
	"github.com/charmbracelet/log"

	"wanderlust/internal/models/domain_models"
)

// Notifier receives a signal after every successful write. The production
// deployment has no mail credentials, so the default implementation simulates
// the dispatch with a structured log line; swapping in a real email sender
// must not change any write's success or failure semantics.
type Notifier interface {
	NotifyInquiry(inquiry *domain_models.Inquiry)
	NotifySubscription(sub *domain_models.NewsletterSubscriber)
	NotifyContactMessage(msg *domain_models.ContactMessage)
}

type logNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) NotifyInquiry(inquiry *domain_models.Inquiry) {
	tour := inquiry.TourID
	if tour == "" {
		tour = "general"
	}
	n.logger.Info("email simulation: new inquiry",
		"fullName", inquiry.FullName,
		"email", inquiry.Email,
		"tour", tour,
	)
}

func (n *logNotifier) NotifySubscription(sub *domain_models.NewsletterSubscriber) {
	n.logger.Info("email simulation: new newsletter subscriber", "email", sub.Email)
}

func (n *logNotifier) NotifyContactMessage(msg *domain_models.ContactMessage) {
	n.logger.Info("email simulation: new contact message",
		"fullName", msg.FullName,
		"email", msg.Email,
		"subject", msg.Subject,
	)
}
