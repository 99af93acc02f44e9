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

// LookupsHandler обработчик справочников категорий и статусов
type LookupsHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewLookupsHandler создает новый обработчик справочников
func NewLookupsHandler(storage repository.Storage, log *zap.Logger) *LookupsHandler {
	return &LookupsHandler{
		storage: storage,
		log:     log,
	}
}

// LookupRequest структура запроса создания справочной записи
type LookupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateLookupRequest структура частичного обновления справочной записи
type UpdateLookupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// ListCategories возвращает активные категории сайтов
//
//	@Summary		List website categories
//	@Tags			Lookups
//	@Produce		json
//	@Success		200	{object}	response
//	@Router			/api/website-categories [get]
func (h *LookupsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.storage.ListWebsiteCategories(r.Context())
	if err != nil {
		h.log.Error("failed to list website categories", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.WebsiteCategory{},
			Success: false,
			Message: "Failed to fetch website categories",
		})
		return
	}
	if categories == nil {
		categories = []*domain.WebsiteCategory{}
	}

	writeJSON(w, http.StatusOK, response{Data: categories, Success: true})
}

// CreateCategory создает новую категорию сайтов
//
//	@Summary		Create a website category
//	@Tags			Lookups
//	@Accept			json
//	@Produce		json
//	@Param			request	body	LookupRequest	true	"Category"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Name is required"
//	@Failure		409	{object}	response	"Name already exists"
//	@Router			/api/website-categories [post]
func (h *LookupsHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	category := &domain.WebsiteCategory{
		Name:        domain.SlugifyName(req.Name),
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}
	if category.Color == "" {
		category.Color = "#6b7280"
	}

	if err := h.storage.CreateWebsiteCategory(r.Context(), category); err != nil {
		if err == repository.ErrNameExists {
			writeError(w, http.StatusConflict, "A category with this name already exists")
			return
		}
		h.log.Error("failed to create website category", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    category,
		Success: true,
		Message: "Category created successfully",
	})
}

// UpdateCategory частично обновляет категорию сайтов
func (h *LookupsHandler) UpdateCategory(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	upd := domain.LookupUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	category, err := h.storage.UpdateWebsiteCategory(r.Context(), id, upd)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			writeError(w, http.StatusNotFound, "Category not found")
		case repository.ErrNameExists:
			writeError(w, http.StatusConflict, "A category with this name already exists")
		default:
			h.log.Error("failed to update website category", zap.Int64("category_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update category")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    category,
		Success: true,
		Message: "Category updated successfully",
	})
}

// DeleteCategory мягко удаляет категорию сайтов
func (h *LookupsHandler) DeleteCategory(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.storage.DeleteWebsiteCategory(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.log.Error("failed to delete website category", zap.Int64("category_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Category deleted successfully",
	})
}

// ListStatuses возвращает активные определения статусов размещений
//
//	@Summary		List backlink statuses
//	@Tags			Lookups
//	@Produce		json
//	@Success		200	{object}	response
//	@Router			/api/backlink-statuses [get]
func (h *LookupsHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.storage.ListBacklinkStatuses(r.Context())
	if err != nil {
		h.log.Error("failed to list backlink statuses", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.BacklinkStatusDefinition{},
			Success: false,
			Message: "Failed to fetch backlink statuses",
		})
		return
	}
	if statuses == nil {
		statuses = []*domain.BacklinkStatusDefinition{}
	}

	writeJSON(w, http.StatusOK, response{Data: statuses, Success: true})
}

// CreateStatus создает определение статуса размещения.
// Имя обязано входить в закрытый список допустимых статусов.
//
//	@Summary		Create a backlink status definition
//	@Tags			Lookups
//	@Accept			json
//	@Produce		json
//	@Param			request	body	LookupRequest	true	"Status"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Name missing or not an allowed status"
//	@Failure		409	{object}	response	"Name already exists"
//	@Router			/api/backlink-statuses [post]
func (h *LookupsHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	name := domain.SlugifyName(req.Name)
	if !domain.IsValidBacklinkStatus(name) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Status must be one of: %s", strings.Join(domain.BacklinkStatuses, ", ")))
		return
	}

	status := &domain.BacklinkStatusDefinition{
		Name:        name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}
	if status.Color == "" {
		status.Color = "#6b7280"
	}

	if err := h.storage.CreateBacklinkStatus(r.Context(), status); err != nil {
		if err == repository.ErrNameExists {
			writeError(w, http.StatusConflict, "A status with this name already exists")
			return
		}
		h.log.Error("failed to create backlink status", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create status")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    status,
		Success: true,
		Message: "Status created successfully",
	})
}

// UpdateStatus частично обновляет определение статуса
func (h *LookupsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name != nil && !domain.IsValidBacklinkStatus(domain.SlugifyName(*req.Name)) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Status must be one of: %s", strings.Join(domain.BacklinkStatuses, ", ")))
		return
	}

	upd := domain.LookupUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	status, err := h.storage.UpdateBacklinkStatus(r.Context(), id, upd)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			writeError(w, http.StatusNotFound, "Status not found")
		case repository.ErrNameExists:
			writeError(w, http.StatusConflict, "A status with this name already exists")
		default:
			h.log.Error("failed to update backlink status", zap.Int64("status_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    status,
		Success: true,
		Message: "Status updated successfully",
	})
}

// DeleteStatus мягко удаляет определение статуса
func (h *LookupsHandler) DeleteStatus(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.storage.DeleteBacklinkStatus(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Status not found")
			return
		}
		h.log.Error("failed to delete backlink status", zap.Int64("status_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete status")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Status deleted successfully",
	})
}
