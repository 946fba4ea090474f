package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"wanderlust/internal/infra"
	"wanderlust/internal/models/domain_models"
)

type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inquiry *domain_models.Inquiry) (*domain_models.Inquiry, error)
	ListInquiries(ctx context.Context) ([]domain_models.Inquiry, error)
	CreateContactMessage(ctx context.Context, msg *domain_models.ContactMessage) (string, error)
}

type inquiryRepository struct {
	store *infra.Store
}

func NewInquiryRepository(store *infra.Store) InquiryRepository {
	return &inquiryRepository{store: store}
}

// CreateInquiry assigns the id and creation timestamp; inquiries carry no
// uniqueness constraint so the insert always succeeds.
func (r *inquiryRepository) CreateInquiry(_ context.Context, inquiry *domain_models.Inquiry) (*domain_models.Inquiry, error) {
	inquiry.ID = uuid.NewString()
	inquiry.CreatedAt = time.Now()
	r.store.Inquiries.Put(inquiry.ID, *inquiry)
	return inquiry, nil
}

// ListInquiries returns inquiries newest first.
func (r *inquiryRepository) ListInquiries(_ context.Context) ([]domain_models.Inquiry, error) {
	inquiries := r.store.Inquiries.List()
	sort.Slice(inquiries, func(a, b int) bool {
		return inquiries[a].CreatedAt.After(inquiries[b].CreatedAt)
	})
	return inquiries, nil
}

// CreateContactMessage stores the message and acknowledges with the id only.
func (r *inquiryRepository) CreateContactMessage(_ context.Context, msg *domain_models.ContactMessage) (string, error) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now()
	r.store.ContactMessages.Put(msg.ID, *msg)
	return msg.ID, nil
}
