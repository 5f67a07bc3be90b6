package stubapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/10Draken01/Docker-Front/internal/log"
)

// APIPrefix is where the roster routes are mounted, matching the remote
// API's base URL path.
const APIPrefix = "/api"

// NewRouter wires the roster routes under APIPrefix.
func NewRouter(h *UserHandler, logger *log.Logger) *mux.Router {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	router := mux.NewRouter()
	router.Use(LoggingMiddleware(logger))
	router.Use(CORSMiddleware)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusNotFound, "Ruta no encontrada")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusMethodNotAllowed, "Método no permitido")
	})

	api := router.PathPrefix(APIPrefix).Subrouter()
	api.HandleFunc("/users", h.List).Methods(http.MethodGet)
	api.HandleFunc("/users", h.Create).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", h.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", h.Delete).Methods(http.MethodDelete)
	api.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	return router
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs every request with its status and duration.
func LoggingMiddleware(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info(r.Context(), "Request handled", log.Fields{
				"method":   r.Method,
				"uri":      r.RequestURI,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			})
		})
	}
}

// CORSMiddleware sets permissive CORS headers so a browser front-end can
// talk to the stub during development.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
