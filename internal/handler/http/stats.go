package http

import (
	"Backtrack-Backend/internal/domain"
	"Backtrack-Backend/internal/repository"
	"net/http"

	"go.uber.org/zap"
)

// StatsHandler обработчик сводной статистики дашборда
type StatsHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(storage repository.Storage, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		storage: storage,
		log:     log,
	}
}

// Dashboard возвращает сводные показатели по всем активным сущностям.
// При ошибке БД отдает нулевые значения, чтобы дашборд не ломался.
//
//	@Summary		Dashboard statistics
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	response
//	@Router			/api/stats [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.storage.GetDashboardStats(r.Context())
	if err != nil {
		h.log.Error("failed to get dashboard stats", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{
			Data:    &domain.DashboardStats{},
			Success: false,
			Message: "Failed to fetch dashboard stats",
		})
		return
	}

	writeJSON(w, http.StatusOK, response{Data: stats, Success: true})
}
