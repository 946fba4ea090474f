package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type mockNewsletterService struct {
	subscribe func(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
	return m.subscribe(ctx, email)
}

var _ services.NewsletterServiceInterface = (*mockNewsletterService)(nil)

func newNewsletterRouter(svc services.NewsletterServiceInterface) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewNewsletterController(svc)
	r.POST("/api/newsletter", ctrl.Subscribe)
	return r
}

func TestSubscribe_201(t *testing.T) {
	svc := &mockNewsletterService{
		subscribe: func(_ context.Context, email string) (*domain_models.NewsletterSubscriber, error) {
			return &domain_models.NewsletterSubscriber{ID: "sub-1", Email: email, SubscribedAt: time.Now()}, nil
		},
	}
	r := newNewsletterRouter(svc)

	rec := doRequest(r, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	var got domain_models.NewsletterSubscriber
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "reader@example.com", got.Email)
}

func TestSubscribe_409_Duplicate(t *testing.T) {
	svc := &mockNewsletterService{
		subscribe: func(context.Context, string) (*domain_models.NewsletterSubscriber, error) {
			return nil, utils.ErrAlreadySubscribed
		},
	}
	r := newNewsletterRouter(svc)

	rec := doRequest(r, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "email already subscribed", env.Message)
}

func TestSubscribe_400_BadEmail(t *testing.T) {
	r := newNewsletterRouter(&mockNewsletterService{})

	rec := doRequest(r, http.MethodPost, "/api/newsletter", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "email")
}

func TestSubscribe_400_MissingBody(t *testing.T) {
	r := newNewsletterRouter(&mockNewsletterService{})

	rec := doRequest(r, http.MethodPost, "/api/newsletter", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
