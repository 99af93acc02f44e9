package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WebsiteInfoHandler обработчик дополнительных карточек сайтов
type WebsiteInfoHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewWebsiteInfoHandler создает новый обработчик карточек
func NewWebsiteInfoHandler(storage repository.Storage, log *zap.Logger) *WebsiteInfoHandler {
	return &WebsiteInfoHandler{
		storage: storage,
		log:     log,
	}
}

// SaveWebsiteInfoRequest структура запроса сохранения карточки
type SaveWebsiteInfoRequest struct {
	WebsiteID    int64   `json:"websiteId"`
	SupportEmail *string `json:"supportEmail"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	URL          *string `json:"url"`
}

// List возвращает все карточки
//
//	@Summary		List website extended info
//	@Tags			WebsiteInfo
//	@Produce		json
//	@Success		200	{object}	response
//	@Router			/api/website-info [get]
func (h *WebsiteInfoHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.storage.ListWebsiteInfo(r.Context())
	if err != nil {
		h.log.Error("failed to list website info", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.WebsiteExtendedInfo{},
			Success: false,
			Message: "Failed to fetch website info",
		})
		return
	}
	if infos == nil {
		infos = []*domain.WebsiteExtendedInfo{}
	}

	writeJSON(w, http.StatusOK, response{Data: infos, Success: true})
}

// Save создает или обновляет карточку сайта (upsert по websiteId)
//
//	@Summary		Save website extended info
//	@Tags			WebsiteInfo
//	@Accept			json
//	@Produce		json
//	@Param			request	body	SaveWebsiteInfoRequest	true	"Extended info"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Website ID is required"
//	@Router			/api/website-info [post]
func (h *WebsiteInfoHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveWebsiteInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.WebsiteID <= 0 {
		writeError(w, http.StatusBadRequest, "Website ID is required")
		return
	}

	info := &domain.WebsiteExtendedInfo{
		WebsiteID:    req.WebsiteID,
		SupportEmail: req.SupportEmail,
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
	}

	if err := h.storage.SaveWebsiteInfo(r.Context(), info); err != nil {
		h.log.Error("failed to save website info", zap.Int64("website_id", req.WebsiteID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save website info")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    info,
		Success: true,
		Message: "Website info saved successfully",
	})
}

// Get возвращает карточку по ID сайта
func (h *WebsiteInfoHandler) Get(w http.ResponseWriter, r *http.Request, websiteID int64) {
	info, err := h.storage.GetWebsiteInfo(r.Context(), websiteID)
	if err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Website info not found")
			return
		}
		h.log.Error("failed to get website info", zap.Int64("website_id", websiteID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch website info")
		return
	}

	writeJSON(w, http.StatusOK, response{Data: info, Success: true})
}

// Delete удаляет карточку сайта
func (h *WebsiteInfoHandler) Delete(w http.ResponseWriter, r *http.Request, websiteID int64) {
	if err := h.storage.DeleteWebsiteInfo(r.Context(), websiteID); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Website info not found")
			return
		}
		h.log.Error("failed to delete website info", zap.Int64("website_id", websiteID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete website info")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Website info deleted successfully",
	})
}
