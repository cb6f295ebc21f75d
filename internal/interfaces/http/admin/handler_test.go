package admin

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

type fakePropertyService struct {
	filter adminapp.PropertyFilter
	active *bool
}

func (f *fakePropertyService) List(_ context.Context, filter adminapp.PropertyFilter) ([]domain.Property, error) {
	f.filter = filter
	return []domain.Property{{ID: "a", Title: "Loft"}}, nil
}

func (f *fakePropertyService) Detail(context.Context, string) (*domain.Property, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakePropertyService) SetActive(_ context.Context, id string, active bool) (*domain.Property, error) {
	f.active = &active
	return &domain.Property{ID: id, IsActive: active}, nil
}

type fakeSearchEventService struct {
	filter adminapp.SearchEventFilter
}

func (f *fakeSearchEventService) List(_ context.Context, filter adminapp.SearchEventFilter) ([]domain.SearchEvent, error) {
	f.filter = filter
	return nil, nil
}

func newAdminRouter(properties *fakePropertyService, events *fakeSearchEventService) http.Handler {
	h := NewHandler(Config{
		Logger:             log.New(io.Discard, "", 0),
		PropertyService:    properties,
		SearchEventService: events,
	})
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestPropertySearchQueryParams(t *testing.T) {
	t.Parallel()

	properties := &fakePropertyService{}
	rec := do(newAdminRouter(properties, &fakeSearchEventService{}), http.MethodGet, "/properties?keyword=loft&includeInactive=false&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if properties.filter != (adminapp.PropertyFilter{Keyword: "loft", IncludeInactive: false, Limit: 5}) {
		t.Fatalf("filter = %+v", properties.filter)
	}
}

func TestPropertyDetailNotFound(t *testing.T) {
	t.Parallel()

	router := newAdminRouter(&fakePropertyService{}, &fakeSearchEventService{})
	if rec := do(router, http.MethodGet, "/properties/"+primitive.NewObjectID().Hex(), ""); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/properties/not-an-id", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPropertyUpdate(t *testing.T) {
	t.Parallel()

	properties := &fakePropertyService{}
	router := newAdminRouter(properties, &fakeSearchEventService{})
	path := "/properties/" + primitive.NewObjectID().Hex()

	if rec := do(router, http.MethodPatch, path, `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing isActive: status = %d", rec.Code)
	}
	if rec := do(router, http.MethodPatch, path, `{"isActive":false,"title":"x"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: status = %d", rec.Code)
	}
	rec := do(router, http.MethodPatch, path, `{"isActive":false}`)
	if rec.Code != http.StatusOK || properties.active == nil || *properties.active {
		t.Fatalf("status = %d active=%v", rec.Code, properties.active)
	}
}

func TestSearchEventListFilters(t *testing.T) {
	t.Parallel()

	events := &fakeSearchEventService{}
	rec := do(newAdminRouter(&fakePropertyService{}, events), http.MethodGet, "/search-events?anonymous=true&limit=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !events.filter.AnonymousOnly || events.filter.Limit != 20 {
		t.Fatalf("filter = %+v", events.filter)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
