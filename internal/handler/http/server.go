package http

import (
	"Backtrack-Backend/internal/repository"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Server HTTP сервер с обработчиками
type Server struct {
	websitesHandler    *WebsitesHandler
	resourcesHandler   *ResourcesHandler
	backlinksHandler   *BacklinksHandler
	statsHandler       *StatsHandler
	lookupsHandler     *LookupsHandler
	websiteInfoHandler *WebsiteInfoHandler
	healthHandler      *HealthHandler
	queryTimeout       time.Duration
	log                *zap.Logger
}

// NewServer создает новый HTTP сервер
func NewServer(storage repository.Storage, queryTimeout time.Duration, log *zap.Logger) *Server {
	return &Server{
		websitesHandler:    NewWebsitesHandler(storage, log),
		resourcesHandler:   NewResourcesHandler(storage, log),
		backlinksHandler:   NewBacklinksHandler(storage, log),
		statsHandler:       NewStatsHandler(storage, log),
		lookupsHandler:     NewLookupsHandler(storage, log),
		websiteInfoHandler: NewWebsiteInfoHandler(storage, log),
		healthHandler:      NewHealthHandler(storage, log),
		queryTimeout:       queryTimeout,
		log:                log,
	}
}

// SetupRoutes настраивает маршруты
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Health checks
	mux.HandleFunc("/health", s.healthHandler.Health)
	mux.HandleFunc("/ready", s.healthHandler.Ready)
	mux.HandleFunc("/metrics", s.healthHandler.Metrics)

	// Swagger документация
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Коллекции
	mux.HandleFunc("/api/websites", s.wrap(s.handleWebsites))
	mux.HandleFunc("/api/websites/", s.wrap(s.handleWebsiteByID))
	mux.HandleFunc("/api/resources", s.wrap(s.handleResources))
	mux.HandleFunc("/api/resources/", s.wrap(s.handleResourceByID))
	mux.HandleFunc("/api/backlinks", s.wrap(s.handleBacklinks))
	mux.HandleFunc("/api/backlinks/", s.wrap(s.handleBacklinkByID))
	mux.HandleFunc("/api/stats", s.wrap(s.handleStats))

	// Справочники
	mux.HandleFunc("/api/website-categories", s.wrap(s.handleCategories))
	mux.HandleFunc("/api/website-categories/", s.wrap(s.handleCategoryByID))
	mux.HandleFunc("/api/backlink-statuses", s.wrap(s.handleStatuses))
	mux.HandleFunc("/api/backlink-statuses/", s.wrap(s.handleStatusByID))

	// Дополнительные карточки сайтов
	mux.HandleFunc("/api/website-info", s.wrap(s.handleWebsiteInfo))
	mux.HandleFunc("/api/website-info/", s.wrap(s.handleWebsiteInfoByID))

	return mux
}

// wrap навешивает CORS и лимит времени запроса на обработчик
func (s *Server) wrap(handler http.HandlerFunc) http.HandlerFunc {
	return corsMiddleware(timeoutMiddleware(s.queryTimeout, handler))
}

func (s *Server) handleWebsites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.websitesHandler.List(w, r)
	case http.MethodPost:
		s.websitesHandler.Create(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleWebsiteByID разбирает /api/websites/{id} и /api/websites/{id}/backlinks
func (s *Server) handleWebsiteByID(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path)
	if len(segments) < 3 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	id, ok := parseID(segments[2])
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid website ID")
		return
	}

	if len(segments) == 4 && segments[3] == "backlinks" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		s.websitesHandler.Backlinks(w, r, id)
		return
	}
	if len(segments) != 3 {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.websitesHandler.Get(w, r, id)
	case http.MethodPut:
		s.websitesHandler.Update(w, r, id)
	case http.MethodDelete:
		s.websitesHandler.Delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.resourcesHandler.List(w, r)
	case http.MethodPost:
		s.resourcesHandler.Create(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleResourceByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.trailingID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.resourcesHandler.Get(w, r, id)
	case http.MethodPut:
		s.resourcesHandler.Update(w, r, id)
	case http.MethodDelete:
		s.resourcesHandler.Delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleBacklinks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.backlinksHandler.Create(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleBacklinkByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.trailingID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPatch:
		s.backlinksHandler.Update(w, r, id)
	case http.MethodDelete:
		s.backlinksHandler.Delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.statsHandler.Dashboard(w, r)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.lookupsHandler.ListCategories(w, r)
	case http.MethodPost:
		s.lookupsHandler.CreateCategory(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.trailingID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.lookupsHandler.UpdateCategory(w, r, id)
	case http.MethodDelete:
		s.lookupsHandler.DeleteCategory(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.lookupsHandler.ListStatuses(w, r)
	case http.MethodPost:
		s.lookupsHandler.CreateStatus(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleStatusByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.trailingID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.lookupsHandler.UpdateStatus(w, r, id)
	case http.MethodDelete:
		s.lookupsHandler.DeleteStatus(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleWebsiteInfo(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.websiteInfoHandler.List(w, r)
	case http.MethodPost:
		s.websiteInfoHandler.Save(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleWebsiteInfoByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.trailingID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.websiteInfoHandler.Get(w, r, id)
	case http.MethodDelete:
		s.websiteInfoHandler.Delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// trailingID извлекает идентификатор из последнего сегмента пути вида
// /api/{collection}/{id}. При ошибке пишет ответ и возвращает ok=false.
func (s *Server) trailingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	segments := pathSegments(r.URL.Path)
	if len(segments) != 3 {
		writeError(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	id, ok := parseID(segments[2])
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}
