package folders

import (
	"context"
	"doccatalog/internal/dto"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fm FolderManager) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	requester, ok := models.UserFromContext(r.Context())
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	folder, err := fm.Create(ctx, requester, req.Folder())
	if err != nil {
		log.Warn("failed to create folder", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusCreated, folder)
}

// Update applies a folder patch. A new parent is checked against the
// reparent targets first; the folder service itself only rejects self-parenting.
func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, fm FolderManager, nav Navigator) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	var req dto.UpdateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	patch := req.Patch()

	if patch.ParentID.Present {
		var parentID *string
		if v := patch.ParentID.Value; v != nil && strings.TrimSpace(*v) != "" {
			trimmed := strings.TrimSpace(*v)
			parentID = &trimmed
		}

		if err := nav.CheckReparent(ctx, id, parentID); err != nil {
			log.Warn("rejected reparent", slog.String("folder_id", id), slog.String("error", err.Error()))
			utils.WriteError(w, err)
			return
		}
	}

	folder, err := fm.Update(ctx, id, patch)
	if err != nil {
		log.Warn("failed to update folder", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, folder)
}

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, id string, fm FolderManager) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	if err := fm.Delete(ctx, id); err != nil {
		log.Warn("failed to delete folder", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, map[string]any{
		id: true,
	})
}
