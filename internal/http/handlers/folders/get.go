package folders

import (
	"context"
	"doccatalog/internal/dto"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

// RootID addresses the top level in /api/folders/{id}/children.
const RootID = "root"

// List returns every folder with its document count.
func List(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fm FolderManager, db DocumentBinder) {
	op := pkg + "List"

	log = log.With(slog.String("op", op))

	folders := fm.ListFolders(ctx)

	respond(w, log, http.StatusOK, withCounts(ctx, folders, db))
}

// GetByID returns a folder, its document count and its breadcrumb trail.
func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, fm FolderManager, nav Navigator, db DocumentBinder) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	folder, err := fm.FolderByID(ctx, id)
	if err != nil {
		log.Warn("failed to get folder", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	breadcrumbs, err := nav.Breadcrumbs(ctx, id)
	if err != nil {
		log.Error("failed to build breadcrumbs", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, map[string]any{
		"folder":      withCounts(ctx, []models.Folder{*folder}, db)[0],
		"breadcrumbs": breadcrumbs,
	})
}

func Ancestors(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, nav Navigator) {
	op := pkg + "Ancestors"

	log = log.With(slog.String("op", op))

	ancestors, err := nav.AncestorsOf(ctx, id)
	if err != nil {
		log.Warn("failed to walk ancestors", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, ancestors)
}

func Children(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, fm FolderManager, nav Navigator) {
	op := pkg + "Children"

	log = log.With(slog.String("op", op))

	var parentID *string
	if id != RootID {
		if _, err := fm.FolderByID(ctx, id); err != nil {
			log.Warn("failed to get folder", slog.String("error", err.Error()))
			utils.WriteError(w, err)
			return
		}
		parentID = &id
	}

	respond(w, log, http.StatusOK, nav.ChildrenOf(ctx, parentID))
}

func ReparentTargets(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, nav Navigator) {
	op := pkg + "ReparentTargets"

	log = log.With(slog.String("op", op))

	targets, err := nav.ValidReparentTargets(ctx, id)
	if err != nil {
		log.Warn("failed to compute reparent targets", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, targets)
}

func Documents(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, db DocumentBinder) {
	op := pkg + "Documents"

	log = log.With(slog.String("op", op))

	docs, err := db.InFolder(ctx, id)
	if err != nil {
		log.Warn("failed to list folder documents", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, docs)
}

func withCounts(ctx context.Context, folders []models.Folder, db DocumentBinder) []dto.FolderResponse {
	ids := make([]string, 0, len(folders))
	for _, f := range folders {
		ids = append(ids, f.ID)
	}

	counts := db.Counts(ctx, ids)

	out := make([]dto.FolderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, dto.FolderResponse{Folder: f, DocumentCount: counts[f.ID]})
	}
	return out
}
