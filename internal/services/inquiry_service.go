package services

import (
	"context"

	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*domain_models.Inquiry, error)
	ListInquiries(ctx context.Context) ([]domain_models.Inquiry, error)
	CreateContactMessage(ctx context.Context, req request_models.ContactMessageRequest) (string, error)
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	notifier    Notifier
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, notifier Notifier) InquiryServiceInterface {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*domain_models.Inquiry, error) {
	// Form defaults mirror the booking widget: two travelers, contact by email.
	travelers := int(req.Travelers)
	if travelers == 0 {
		travelers = 2
	}
	preference := domain_models.ContactPreference(req.ContactPreference)
	if preference == "" {
		preference = domain_models.ContactByEmail
	}

	inquiry := &domain_models.Inquiry{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		TourID:            req.TourID,
		DestinationID:     req.DestinationID,
		TravelDate:        req.TravelDate,
		Travelers:         travelers,
		Message:           req.Message,
		ContactPreference: preference,
	}

	stored, err := s.inquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		return nil, utils.ErrStoreFault
	}

	s.notifier.NotifyInquiry(stored)
	return stored, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]domain_models.Inquiry, error) {
	return s.inquiryRepo.ListInquiries(ctx)
}

func (s *InquiryService) CreateContactMessage(ctx context.Context, req request_models.ContactMessageRequest) (string, error) {
	msg := &domain_models.ContactMessage{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
	}

	id, err := s.inquiryRepo.CreateContactMessage(ctx, msg)
	if err != nil {
		return "", utils.ErrStoreFault
	}

	s.notifier.NotifyContactMessage(msg)
	return id, nil
}
