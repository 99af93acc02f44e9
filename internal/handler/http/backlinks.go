package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BacklinksHandler обработчик для работы с записями размещений
type BacklinksHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewBacklinksHandler создает новый обработчик размещений
func NewBacklinksHandler(storage repository.Storage, log *zap.Logger) *BacklinksHandler {
	return &BacklinksHandler{
		storage: storage,
		log:     log,
	}
}

// CreateBacklinkRequest структура запроса создания размещения
type CreateBacklinkRequest struct {
	WebsiteID     int64    `json:"website_id"`
	ResourceID    int64    `json:"resource_id"`
	Status        string   `json:"status"`
	AnchorText    *string  `json:"anchor_text"`
	TargetURL     *string  `json:"target_url"`
	PlacementDate *string  `json:"placement_date"`
	RemovalDate   *string  `json:"removal_date"`
	Cost          *float64 `json:"cost"`
	Notes         *string  `json:"notes"`
}

// UpdateBacklinkRequest структура частичного обновления размещения.
// Даты передаются строками ISO 8601.
type UpdateBacklinkRequest struct {
	Status        *string  `json:"status"`
	AnchorText    *string  `json:"anchor_text"`
	TargetURL     *string  `json:"target_url"`
	PlacementDate *string  `json:"placement_date"`
	RemovalDate   *string  `json:"removal_date"`
	Cost          *float64 `json:"cost"`
	Notes         *string  `json:"notes"`
}

// parseDate принимает дату как "2006-01-02" или полный RFC 3339.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// Create создает запись размещения
//
//	@Summary		Create a backlink record
//	@Tags			Backlinks
//	@Accept			json
//	@Produce		json
//	@Param			request	body	CreateBacklinkRequest	true	"Backlink"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Invalid references or status"
//	@Failure		404	{object}	response	"Website or resource not found"
//	@Failure		409	{object}	response	"Backlink already exists for this pair"
//	@Router			/api/backlinks [post]
func (h *BacklinksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBacklinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.WebsiteID <= 0 || req.ResourceID <= 0 {
		writeError(w, http.StatusBadRequest, "Website ID and resource ID are required")
		return
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.IsValidBacklinkStatus(status) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Status must be one of: %s", strings.Join(domain.BacklinkStatuses, ", ")))
		return
	}

	backlink := &domain.Backlink{
		WebsiteID:  req.WebsiteID,
		ResourceID: req.ResourceID,
		Status:     status,
		AnchorText: req.AnchorText,
		TargetURL:  req.TargetURL,
		Cost:       req.Cost,
		Notes:      req.Notes,
	}
	if req.PlacementDate != nil && *req.PlacementDate != "" {
		t, err := parseDate(*req.PlacementDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid placement date format")
			return
		}
		backlink.PlacementDate = &t
	}
	if req.RemovalDate != nil && *req.RemovalDate != "" {
		t, err := parseDate(*req.RemovalDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid removal date format")
			return
		}
		backlink.RemovalDate = &t
	}

	if err := h.storage.CreateBacklink(r.Context(), backlink); err != nil {
		switch err {
		case repository.ErrNotFound:
			writeError(w, http.StatusNotFound, "Website or resource not found")
		case repository.ErrDuplicatePair:
			writeError(w, http.StatusConflict, "A backlink already exists for this website and resource")
		default:
			h.log.Error("failed to create backlink", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create backlink")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    backlink,
		Success: true,
		Message: "Backlink created successfully",
	})
}

// Update частично обновляет запись размещения
//
//	@Summary		Update a backlink record
//	@Tags			Backlinks
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Backlink ID"
//	@Param			request	body	UpdateBacklinkRequest	true	"Fields to update"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Invalid status or empty update"
//	@Failure		404	{object}	response	"Backlink not found"
//	@Router			/api/backlinks/{id} [patch]
func (h *BacklinksHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateBacklinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Status != nil && !domain.IsValidBacklinkStatus(*req.Status) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Status must be one of: %s", strings.Join(domain.BacklinkStatuses, ", ")))
		return
	}

	upd := domain.BacklinkUpdate{
		Status:     req.Status,
		AnchorText: req.AnchorText,
		TargetURL:  req.TargetURL,
		Cost:       req.Cost,
		Notes:      req.Notes,
	}
	if req.PlacementDate != nil && *req.PlacementDate != "" {
		t, err := parseDate(*req.PlacementDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid placement date format")
			return
		}
		upd.PlacementDate = &t
	}
	if req.RemovalDate != nil && *req.RemovalDate != "" {
		t, err := parseDate(*req.RemovalDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid removal date format")
			return
		}
		upd.RemovalDate = &t
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.storage.UpdateBacklink(r.Context(), id, upd); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Backlink not found")
			return
		}
		h.log.Error("failed to update backlink", zap.Int64("backlink_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update backlink")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Backlink updated successfully",
	})
}

// Delete физически удаляет запись размещения
func (h *BacklinksHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.storage.DeleteBacklink(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Backlink not found")
			return
		}
		h.log.Error("failed to delete backlink", zap.Int64("backlink_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete backlink")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Backlink deleted successfully",
	})
}
