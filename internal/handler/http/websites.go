package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"Backtrack-Backend/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// WebsitesHandler обработчик для работы с целевыми сайтами
type WebsitesHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewWebsitesHandler создает новый обработчик сайтов
func NewWebsitesHandler(storage repository.Storage, log *zap.Logger) *WebsitesHandler {
	return &WebsitesHandler{
		storage: storage,
		log:     log,
	}
}

// CreateWebsiteRequest структура запроса создания сайта
type CreateWebsiteRequest struct {
	Domain   string `json:"domain"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpdateWebsiteRequest структура частичного обновления сайта
type UpdateWebsiteRequest struct {
	Domain   *string `json:"domain"`
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// List возвращает активные сайты с агрегированной статистикой
//
//	@Summary		List websites with stats
//	@Tags			Websites
//	@Produce		json
//	@Success		200	{object}	response
//	@Router			/api/websites [get]
func (h *WebsitesHandler) List(w http.ResponseWriter, r *http.Request) {
	websites, err := h.storage.ListWebsitesWithStats(r.Context())
	if err != nil {
		h.log.Error("failed to list websites", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.WebsiteWithStats{},
			Success: false,
			Message: "Failed to fetch websites",
		})
		return
	}
	if websites == nil {
		websites = []*domain.WebsiteWithStats{}
	}

	writeJSON(w, http.StatusOK, response{Data: websites, Success: true})
}

// Create создает новый сайт
//
//	@Summary		Create a website
//	@Tags			Websites
//	@Accept			json
//	@Produce		json
//	@Param			request	body	CreateWebsiteRequest	true	"Website"
//	@Success		200	{object}	response
//	@Failure		400	{object}	response	"Missing required fields"
//	@Failure		409	{object}	response	"Domain already exists"
//	@Router			/api/websites [post]
func (h *WebsitesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Domain) == "" || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		writeError(w, http.StatusBadRequest, "Domain, name, and category are required")
		return
	}

	website := &domain.Website{
		Domain:   domain.NormalizeDomain(req.Domain),
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		IsActive: true,
	}

	if err := h.storage.CreateWebsite(r.Context(), website); err != nil {
		if err == repository.ErrDomainExists {
			writeError(w, http.StatusConflict, "A website with this domain already exists")
			return
		}
		h.log.Error("failed to create website", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create website")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    website,
		Success: true,
		Message: "Website created successfully",
	})
}

// Get возвращает сайт по ID
func (h *WebsitesHandler) Get(w http.ResponseWriter, r *http.Request, id int64) {
	website, err := h.storage.GetWebsite(r.Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Website not found")
			return
		}
		h.log.Error("failed to get website", zap.Int64("website_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch website")
		return
	}

	writeJSON(w, http.StatusOK, response{Data: website, Success: true})
}

// Update частично обновляет сайт
func (h *WebsitesHandler) Update(w http.ResponseWriter, r *http.Request, id int64) {
	var req UpdateWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	upd := domain.WebsiteUpdate{
		Domain:   req.Domain,
		Name:     req.Name,
		Category: req.Category,
	}
	if upd.IsEmpty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	website, err := h.storage.UpdateWebsite(r.Context(), id, upd)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			writeError(w, http.StatusNotFound, "Website not found")
		case repository.ErrDomainExists:
			writeError(w, http.StatusConflict, "A website with this domain already exists")
		default:
			h.log.Error("failed to update website", zap.Int64("website_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update website")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Data:    website,
		Success: true,
		Message: "Website updated successfully",
	})
}

// Delete мягко удаляет сайт
func (h *WebsitesHandler) Delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.storage.DeleteWebsite(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeError(w, http.StatusNotFound, "Website not found")
			return
		}
		h.log.Error("failed to delete website", zap.Int64("website_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete website")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Website deleted successfully",
	})
}

// Backlinks возвращает размещения сайта с деталями ресурса.
// Критерии фильтра применяются в памяти поверх отсортированной выборки.
func (h *WebsitesHandler) Backlinks(w http.ResponseWriter, r *http.Request, id int64) {
	backlinks, err := h.storage.ListWebsiteBacklinks(r.Context(), id)
	if err != nil {
		h.log.Error("failed to list backlinks", zap.Int64("website_id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    []*domain.Backlink{},
			Success: false,
			Message: "Failed to fetch backlinks",
		})
		return
	}

	filter := backlinkFilterFromQuery(r)
	backlinks = filter.Apply(backlinks)
	service.SortBacklinks(backlinks)
	if backlinks == nil {
		backlinks = []*domain.Backlink{}
	}

	writeJSON(w, http.StatusOK, response{Data: backlinks, Success: true})
}

// backlinkFilterFromQuery разбирает критерии фильтра размещений.
func backlinkFilterFromQuery(r *http.Request) service.BacklinkFilter {
	q := r.URL.Query()

	filter := service.BacklinkFilter{
		MinDomainAuthority: parseIntOrDefault(q.Get("min_da"), 0),
		Search:             q.Get("search"),
	}
	if raw := q.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, s)
			}
		}
	}
	if raw := q.Get("max_cost"); raw != "" {
		if v, ok := parseFloat(raw); ok {
			filter.MaxCost = &v
		}
	}

	return filter
}
