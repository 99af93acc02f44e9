package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ResourcesHandler обработчик для работы с каталогом ресурсов
type ResourcesHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewResourcesHandler создает новый обработчик ресурсов
func NewResourcesHandler(storage repository.Storage, log *zap.Logger) *ResourcesHandler {
	return &ResourcesHandler{
		storage: storage,
		log:     log,
	}
}

// CreateResourceRequest структура запроса создания ресурса
type CreateResourceRequest struct {
	Domain          string  `json:"domain"`
	URL             string  `json:"url"`
	ContactEmail    *string `json:"contact_email"`
	DomainAuthority int     `json:"domain_authority"`
	Category        string  `json:"category"`
	Cost            float64 `json:"cost"`
	Notes           *string `json:"notes"`
}

// UpdateResourceRequest структура частичного обновления ресурса
type UpdateResourceRequest struct {
	Domain          *string  `json:"domain"`
	URL             *string  `json:"url"`
	ContactEmail    *string  `json:"contact_email"`
	DomainAuthority *int     `json:"domain_authority"`
	Category        *string  `json:"category"`
	Cost            *float64 `json:"cost"`
	Notes           *string  `json:"notes"`
}

// List возвращает страницу ресурсов со статистикой размещений
//
//	@Summary		List resources with stats
//	@Tags			Resources
//	@Produce		json
//	@Param			category	query	string	false	"Resource category"
//	@Param			search		query	string	false	"Substring of domain or url"
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Page size"
//	@Success		200	{object}	response
//	@Router			/api/resources [get]
func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ResourceFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     parseIntOrDefault(q.Get("page"), repository.DefaultPage),
		Limit:    parseIntOrDefault(q.Get("limit"), repository.DefaultLimit),
	}
	filter.Normalize()

	resources, total, err := h.storage.ListResources(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to list resources", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.ResourceWithStats{},
			Success: false,
			Message: "Failed to fetch resources",
		})
		return
	}
	if resources == nil {
		resources = []*domain.ResourceWithStats{}
	}

	pagination := repository.NewPagination(filter.Page, filter.Limit, total)
	writeJSON(w, http.StatusOK, response{
		Data:       resources,
		Pagination: &pagination,
		Success:    true,
	})
}

// Create создает новый ресурс
//
//	@Summary		Create a resource
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			request	body	CreateResourceRequest	true	"Resource"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Missing or invalid fields"
//	@Failure		409	{object}	response	"Domain already exists"
//	@Router			/api/resources [post]
func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Domain) == "" || strings.TrimSpace(req.URL) == "" || strings.TrimSpace(req.Category) == "" {
		writeError(w, http.StatusBadRequest, "Domain, url, and category are required")
		return
	}
	if !domain.IsValidResourceCategory(req.Category) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Category must be one of: %s", strings.Join(domain.ResourceCategories, ", ")))
		return
	}
	if req.DomainAuthority < 0 || req.DomainAuthority > 100 {
		writeError(w, http.StatusBadRequest, "Domain authority must be between 0 and 100")
		return
	}
	if req.Cost < 0 {
		writeError(w, http.StatusBadRequest, "Cost cannot be negative")
		return
	}

	resource := &domain.Resource{
		Domain:          domain.NormalizeDomain(req.Domain),
		URL:             strings.TrimSpace(req.URL),
		ContactEmail:    req.ContactEmail,
		DomainAuthority: req.DomainAuthority,
		Category:        req.Category,
		Cost:            req.Cost,
		Notes:           req.Notes,
		IsActive:        true,
	}

	if err := h.storage.CreateResource(r.Context(), resource); err != nil {
		if err == repository.ErrDomainExists {
			writeError(w, http.StatusConflict, "A resource with this domain already exists")
			return
		}
		h.log.Error("failed to create resource", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create resource")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    resource,
		Success: true,
		Message: "Resource created successfully",
	})
}

// Get возвращает ресурс со статистикой по ID
func (h *ResourcesHandler) Get(w http.ResponseWriter, r *http.Request, id int64) {
	resource, err := h.storage.GetResource(r.Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		h.log.Error("failed to get resource", zap.Int64("resource_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch resource")
		return
	}

	writeJSON(w, http.StatusOK, response{Data: resource, Success: true})
}

// Update частично обновляет ресурс
func (h *ResourcesHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Category != nil && !domain.IsValidResourceCategory(*req.Category) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Category must be one of: %s", strings.Join(domain.ResourceCategories, ", ")))
		return
	}
	if req.DomainAuthority != nil && (*req.DomainAuthority < 0 || *req.DomainAuthority > 100) {
		writeError(w, http.StatusBadRequest, "Domain authority must be between 0 and 100")
		return
	}
	if req.Cost != nil && *req.Cost < 0 {
		writeError(w, http.StatusBadRequest, "Cost cannot be negative")
		return
	}

	upd := domain.ResourceUpdate{
		Domain:          req.Domain,
		URL:             req.URL,
		ContactEmail:    req.ContactEmail,
		DomainAuthority: req.DomainAuthority,
		Category:        req.Category,
		Cost:            req.Cost,
		Notes:           req.Notes,
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	resource, err := h.storage.UpdateResource(r.Context(), id, upd)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			writeError(w, http.StatusNotFound, "Resource not found")
		case repository.ErrDomainExists:
			writeError(w, http.StatusConflict, "A resource with this domain already exists")
		default:
			h.log.Error("failed to update resource", zap.Int64("resource_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update resource")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    resource,
		Success: true,
		Message: "Resource updated successfully",
	})
}

// Delete удаляет ресурс и все его размещения одной транзакцией
func (h *ResourcesHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	removed, err := h.storage.DeleteResource(r.Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		h.log.Error("failed to delete resource", zap.Int64("resource_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete resource")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: fmt.Sprintf("Resource deleted successfully. Removed %d backlink tracking entries from all websites.", removed),
	})
}
