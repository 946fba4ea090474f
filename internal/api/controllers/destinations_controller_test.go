package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/models/domain_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ---- mock destination service ----------------------------------------------

type mockDestinationService struct {
	list         func(ctx context.Context) ([]domain_models.Destination, error)
	listFeatured func(ctx context.Context) ([]domain_models.Destination, error)
	getByID      func(ctx context.Context, id string) (*domain_models.Destination, error)
}

func (m *mockDestinationService) ListDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return m.list(ctx)
}

func (m *mockDestinationService) ListFeaturedDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	return m.listFeatured(ctx)
}

func (m *mockDestinationService) GetDestinationByID(ctx context.Context, id string) (*domain_models.Destination, error) {
	return m.getByID(ctx, id)
}

var _ services.DestinationServiceInterface = (*mockDestinationService)(nil)

type mockTourService struct {
	byDestination func(ctx context.Context, destinationID string) ([]domain_models.Tour, error)
}

func (m *mockTourService) ListTours(context.Context) ([]domain_models.Tour, error) {
	return nil, nil
}

func (m *mockTourService) ListFeaturedTours(context.Context) ([]domain_models.Tour, error) {
	return nil, nil
}

func (m *mockTourService) ListToursByDestination(ctx context.Context, destinationID string) ([]domain_models.Tour, error) {
	return m.byDestination(ctx, destinationID)
}

func (m *mockTourService) GetTourByID(context.Context, string) (*domain_models.Tour, error) {
	return nil, nil
}

func (m *mockTourService) GetTourItinerary(context.Context, string) ([]domain_models.TourItinerary, error) {
	return nil, nil
}

var _ services.TourServiceInterface = (*mockTourService)(nil)

func newDestinationsRouter(destSvc services.DestinationServiceInterface, tourSvc services.TourServiceInterface) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewDestinationsController(destSvc, tourSvc)
	r.GET("/api/destinations", ctrl.ListDestinations)
	r.GET("/api/destinations/featured", ctrl.ListFeaturedDestinations)
	r.GET("/api/destinations/:id", ctrl.GetDestinationByID)
	r.GET("/api/destinations/:id/tours", ctrl.GetDestinationTours)
	return r
}

// ---- tests -----------------------------------------------------------------

func TestListDestinations_200(t *testing.T) {
	svc := &mockDestinationService{
		list: func(context.Context) ([]domain_models.Destination, error) {
			return []domain_models.Destination{{ID: "1", Name: "Bali"}, {ID: "2", Name: "Santorini"}}, nil
		},
	}
	r := newDestinationsRouter(svc, nil)

	rec := doRequest(r, http.MethodGet, "/api/destinations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)

	var got []domain_models.Destination
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}

func TestGetDestinationByID_404(t *testing.T) {
	svc := &mockDestinationService{
		getByID: func(context.Context, string) (*domain_models.Destination, error) {
			return nil, utils.ErrDestinationNotFound
		},
	}
	r := newDestinationsRouter(svc, nil)

	rec := doRequest(r, http.MethodGet, "/api/destinations/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "destination not found", env.Message)
}

func TestGetDestinationTours_200_UnknownIDIsEmpty(t *testing.T) {
	tourSvc := &mockTourService{
		byDestination: func(_ context.Context, destinationID string) ([]domain_models.Tour, error) {
			assert.Equal(t, "42", destinationID)
			return []domain_models.Tour{}, nil
		},
	}
	r := newDestinationsRouter(nil, tourSvc)

	rec := doRequest(r, http.MethodGet, "/api/destinations/42/tours", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var got []domain_models.Tour
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Empty(t, got)
}
