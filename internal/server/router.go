package server

import (
	"log"
	"net/http"
	"time"

	"github.com/biryaniking52/catering-app/internal/config"
	"github.com/biryaniking52/catering-app/internal/handlers"
	"github.com/biryaniking52/catering-app/internal/httpx"
	"github.com/biryaniking52/catering-app/internal/lifecycle"
	"github.com/biryaniking52/catering-app/internal/middleware"
	"github.com/biryaniking52/catering-app/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(st *store.Store, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := st.DB().Exec("SELECT 1").Error; err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, werr := w.Write([]byte(`{"status":"degraded"}`)); werr != nil {
				_ = werr
			}
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := handlers.NewCategoryHandler(st)
	registerCRUD(mux, "/categories", ch.List, ch.Create, ch.Update, ch.Delete)

	vh := handlers.NewVendorHandler(st)
	registerCRUD(mux, "/vendors", vh.List, vh.Create, vh.Update, vh.Delete)

	cuh := handlers.NewCustomerHandler(st)
	registerCRUD(mux, "/customers", cuh.List, cuh.Create, cuh.Update, cuh.Delete)
	mux.HandleFunc("/customers/match", requireMethod(http.MethodGet, cuh.Match))

	fh := handlers.NewFoodItemHandler(st)
	registerCRUD(mux, "/fooditems", fh.List, fh.Create, fh.Update, fh.Delete)
	mux.HandleFunc("/fooditems/bulk", requireMethod(http.MethodPost, fh.BulkCreate))

	lc := lifecycle.NewService(st)
	qh := handlers.NewQuoteHandler(st, lc, cfg.DefaultGST, cfg.CurrencySymbol)
	registerCRUD(mux, "/quotes", qh.List, qh.Create, qh.Update, qh.Delete)
	mux.HandleFunc("/quotes/submit", requireMethod(http.MethodPost, qh.Submit))
	mux.HandleFunc("/quotes/approve", requireMethod(http.MethodPost, qh.Approve))
	mux.HandleFunc("/quotes/reject", requireMethod(http.MethodPost, qh.Reject))
	mux.HandleFunc("/quotes/start", requireMethod(http.MethodPost, qh.Start))
	mux.HandleFunc("/quotes/complete", requireMethod(http.MethodPost, qh.Complete))
	mux.HandleFunc("/quotes/totals", requireMethod(http.MethodGet, qh.Totals))
	mux.HandleFunc("/quotes/menu", requireMethod(http.MethodGet, qh.Menu))
	mux.HandleFunc("/quotes/pdf", requireMethod(http.MethodGet, qh.PDF))

	// Root placeholder
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, werr := w.Write([]byte("Catering Back-Office API")); werr != nil {
			_ = werr
		}
	})
	//revive:enable:unused-parameter

	return middleware.Role(withRecover(withLogging(mux)))
}

// registerCRUD wires the List/Create pair on the base path and the
// update/delete actions on sub-paths, the same shape for every entity.
func registerCRUD(mux *http.ServeMux, base string, list, create, update, del http.HandlerFunc) {
	mux.HandleFunc(base, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc(base+"/update", requireMethod(http.MethodPost, update))
	mux.HandleFunc(base+"/delete", requireMethod(http.MethodPost, del))
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
