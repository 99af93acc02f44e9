package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnvelope разбирает единый конверт ответа API в тестах.
type testEnvelope struct {
	Data       json.RawMessage        `json:"data"`
	Pagination *repository.Pagination `json:"pagination"`
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
}

func newTestServer(storage repository.Storage) http.Handler {
	return NewServer(storage, time.Second, zap.NewNop()).SetupRoutes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestListWebsites_Envelope(t *testing.T) {
	storage := new(MockStorage)
	storage.On("ListWebsitesWithStats", mock.Anything).Return([]*domain.WebsiteWithStats{
		{Website: domain.Website{ID: 1, Domain: "a.com", Name: "A"}, TotalOpportunities: 3},
	}, nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet, "/api/websites", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)

	var websites []*domain.WebsiteWithStats
	require.NoError(t, json.Unmarshal(envelope.Data, &websites))
	require.Len(t, websites, 1)
	assert.Equal(t, int64(3), websites[0].TotalOpportunities)
}

func TestListWebsites_ErrorDegradesToEmptyArray(t *testing.T) {
	storage := new(MockStorage)
	storage.On("ListWebsitesWithStats", mock.Anything).Return(nil, assert.AnError)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet, "/api/websites", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, envelope.Success)
	// Клиент получает пустой массив, а не null
	assert.Equal(t, "[]", strings.TrimSpace(string(envelope.Data)))
}

func TestCreateWebsite_MissingFields(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/websites",
		`{"domain": "a.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Domain, name, and category are required", envelope.Message)
	storage.AssertNotCalled(t, "CreateWebsite")
}

func TestCreateWebsite_DuplicateDomain(t *testing.T) {
	storage := new(MockStorage)
	storage.On("CreateWebsite", mock.Anything, mock.Anything).Return(repository.ErrDomainExists)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/websites",
		`{"domain": "a.com", "name": "A", "category": "saas"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A website with this domain already exists", envelope.Message)
}

func TestGetWebsite_InvalidID(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet, "/api/websites/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
}

func TestGetWebsite_NotFound(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetWebsite", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet, "/api/websites/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Website not found", envelope.Message)
}

func TestUpdateWebsite_EmptyBody(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPut, "/api/websites/1", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No fields to update", envelope.Message)
	storage.AssertNotCalled(t, "UpdateWebsite")
}

func TestWebsiteBacklinks_AppliesQueryFilter(t *testing.T) {
	storage := new(MockStorage)
	storage.On("ListWebsiteBacklinks", mock.Anything, int64(1)).Return([]*domain.Backlink{
		{ID: 1, Status: domain.StatusLive, Resource: &domain.Resource{Domain: "high.com", DomainAuthority: 80}},
		{ID: 2, Status: domain.StatusLive, Resource: &domain.Resource{Domain: "low.com", DomainAuthority: 20}},
		{ID: 3, Status: domain.StatusPending, Resource: &domain.Resource{Domain: "other.com", DomainAuthority: 90}},
	}, nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet,
		"/api/websites/1/backlinks?status=live&min_da=50", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var backlinks []*domain.Backlink
	require.NoError(t, json.Unmarshal(envelope.Data, &backlinks))
	require.Len(t, backlinks, 1)
	assert.Equal(t, int64(1), backlinks[0].ID)
}

func TestListResources_CoercesPageAndLimit(t *testing.T) {
	storage := new(MockStorage)
	storage.On("ListResources", mock.Anything, repository.ResourceFilter{
		Page:  repository.DefaultPage,
		Limit: repository.DefaultLimit,
	}).Return([]*domain.ResourceWithStats{}, int64(0), nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet,
		"/api/resources?page=0&limit=-5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, repository.DefaultPage, envelope.Pagination.Page)
	assert.Equal(t, repository.DefaultLimit, envelope.Pagination.Limit)
	assert.Equal(t, int64(0), envelope.Pagination.TotalPages)
	storage.AssertExpectations(t)
}

func TestListResources_PaginationEnvelope(t *testing.T) {
	storage := new(MockStorage)
	storage.On("ListResources", mock.Anything, repository.ResourceFilter{Page: 2, Limit: 10}).
		Return([]*domain.ResourceWithStats{}, int64(25), nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet,
		"/api/resources?page=2&limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, int64(25), envelope.Pagination.Total)
	assert.Equal(t, int64(3), envelope.Pagination.TotalPages)
}

func TestCreateResource_InvalidCategory(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/resources",
		`{"domain": "a.com", "url": "https://a.com", "category": "unknown"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, envelope.Message, "Category must be one of")
	storage.AssertNotCalled(t, "CreateResource")
}

func TestDeleteResource_ReportsRemovedCount(t *testing.T) {
	storage := new(MockStorage)
	storage.On("DeleteResource", mock.Anything, int64(7)).Return(int64(3), nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodDelete, "/api/resources/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t,
		"Resource deleted successfully. Removed 3 backlink tracking entries from all websites.",
		envelope.Message)
}

func TestCreateBacklink_InvalidStatus(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/backlinks",
		`{"website_id": 1, "resource_id": 2, "status": "bogus"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, envelope.Message, "Status must be one of")
	storage.AssertNotCalled(t, "CreateBacklink")
}

func TestCreateBacklink_DuplicatePair(t *testing.T) {
	storage := new(MockStorage)
	storage.On("CreateBacklink", mock.Anything, mock.Anything).Return(repository.ErrDuplicatePair)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/backlinks",
		`{"website_id": 1, "resource_id": 2}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A backlink already exists for this website and resource", envelope.Message)
}

func TestUpdateBacklink_NotFound(t *testing.T) {
	storage := new(MockStorage)
	storage.On("UpdateBacklink", mock.Anything, int64(5), mock.Anything).Return(repository.ErrNotFound)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPatch, "/api/backlinks/5",
		`{"status": "live"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Backlink not found", envelope.Message)
}

func TestDashboard_ZeroedOnError(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetDashboardStats", mock.Anything).Return(nil, assert.AnError)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodGet, "/api/stats", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, envelope.Success)

	var stats domain.DashboardStats
	require.NoError(t, json.Unmarshal(envelope.Data, &stats))
	assert.Equal(t, int64(0), stats.TotalWebsites)
	assert.Equal(t, 0.0, stats.AverageCompletionRate)
}

func TestCreateBacklinkStatus_RejectsUnknownName(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/backlink-statuses",
		`{"name": "archived"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, envelope.Message, "Status must be one of")
	storage.AssertNotCalled(t, "CreateBacklinkStatus")
}

func TestCreateWebsiteCategory_SlugsName(t *testing.T) {
	storage := new(MockStorage)
	storage.On("CreateWebsiteCategory", mock.Anything, mock.MatchedBy(func(c *domain.WebsiteCategory) bool {
		return c.Name == "machine-learning"
	})).Return(nil)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/website-categories",
		`{"name": "Machine Learning"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
	storage.AssertExpectations(t)
}

func TestSaveWebsiteInfo_RequiresWebsiteID(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodPost, "/api/website-info",
		`{"title": "No ID"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Website ID is required", envelope.Message)
	storage.AssertNotCalled(t, "SaveWebsiteInfo")
}

func TestMethodNotAllowed(t *testing.T) {
	storage := new(MockStorage)

	rec, envelope := doRequest(t, newTestServer(storage), http.MethodDelete, "/api/websites", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, envelope.Success)
}

func TestCORSPreflight(t *testing.T) {
	storage := new(MockStorage)

	req := httptest.NewRequest(http.MethodOptions, "/api/websites", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newTestServer(storage).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
