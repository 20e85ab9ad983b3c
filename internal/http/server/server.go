package server

import (
	"context"
	"doccatalog/internal/config"
	"doccatalog/internal/http/handlers/catalog"
	"doccatalog/internal/http/handlers/docs"
	"doccatalog/internal/http/handlers/folders"
	"doccatalog/internal/http/handlers/session"
	"doccatalog/internal/http/middleware"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	origins []string,
	svc Services,
) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      NewHandler(log, origins, svc),
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// NewHandler builds the router. CORS wraps everything so pre-flight
// requests never reach the auth middleware.
func NewHandler(log *slog.Logger, origins []string, svc Services) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, svc)

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Documents-Count", "X-Request-ID"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

func setupRoutes(r *mux.Router, log *slog.Logger, svc Services) {
	// DELETE session
	r.HandleFunc("/api/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := mux.Vars(r)["token"]
		session.Delete(ctx, log, w, r, token, svc.Sessions)
	}).Methods(http.MethodDelete)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, svc.Sessions))

	setupCatalogRoutes(protected, log, svc)
	setupFolderRoutes(protected, log, svc)
	setupDocumentRoutes(protected, log, svc)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}

func setupCatalogRoutes(r *mux.Router, log *slog.Logger, svc Services) {
	// GET catalog page
	r.HandleFunc("/api/catalog", func(w http.ResponseWriter, r *http.Request) {
		catalog.Get(r.Context(), log, w, r, svc.Catalog)
	}).Methods(http.MethodGet)

	// HEAD catalog
	r.HandleFunc("/api/catalog", func(w http.ResponseWriter, r *http.Request) {
		catalog.Head(r.Context(), log, w, r, svc.Catalog)
	}).Methods(http.MethodHead)

	// POST reload
	r.HandleFunc("/api/catalog/refresh", func(w http.ResponseWriter, r *http.Request) {
		catalog.Refresh(r.Context(), log, w, r, svc.Refresher, svc.Catalog)
	}).Methods(http.MethodPost)
}

func setupFolderRoutes(r *mux.Router, log *slog.Logger, svc Services) {
	r.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		folders.List(r.Context(), log, w, r, svc.Folders, svc.Binding)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		folders.Create(r.Context(), log, w, r, svc.Folders)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/folders/{id}", func(w http.ResponseWriter, r *http.Request) {
		folders.GetByID(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Folders, svc.Navigator, svc.Binding)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/folders/{id}", func(w http.ResponseWriter, r *http.Request) {
		folders.Update(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Folders, svc.Navigator)
	}).Methods(http.MethodPatch)

	r.HandleFunc("/api/folders/{id}", func(w http.ResponseWriter, r *http.Request) {
		folders.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Folders)
	}).Methods(http.MethodDelete)

	r.HandleFunc("/api/folders/{id}/ancestors", func(w http.ResponseWriter, r *http.Request) {
		folders.Ancestors(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Navigator)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/folders/{id}/children", func(w http.ResponseWriter, r *http.Request) {
		folders.Children(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Folders, svc.Navigator)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/folders/{id}/reparent-targets", func(w http.ResponseWriter, r *http.Request) {
		folders.ReparentTargets(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Navigator)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/folders/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		folders.Documents(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Binding)
	}).Methods(http.MethodGet)
}

func setupDocumentRoutes(r *mux.Router, log *slog.Logger, svc Services) {
	r.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		docs.GetByID(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		docs.Update(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodPatch)

	r.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		docs.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodDelete)

	r.HandleFunc("/api/docs/{id}/favorite", func(w http.ResponseWriter, r *http.Request) {
		docs.ToggleFavorite(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/docs/{id}/folder", func(w http.ResponseWriter, r *http.Request) {
		docs.Move(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Binding)
	}).Methods(http.MethodPut)

	r.HandleFunc("/api/docs/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		docs.Download(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/docs/{id}/activities", func(w http.ResponseWriter, r *http.Request) {
		docs.Activities(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/docs/{id}/activities", func(w http.ResponseWriter, r *http.Request) {
		docs.LogActivity(r.Context(), log, w, r, mux.Vars(r)["id"], svc.Documents)
	}).Methods(http.MethodPost)
}
