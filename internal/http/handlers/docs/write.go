package docs

import (
	"context"
	"doccatalog/internal/dto"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	var req dto.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	user, _ := models.UserFromContext(r.Context())

	doc, err := ds.UpdateDocument(ctx, docID, req.Patch(), user)
	if err != nil {
		log.Warn("failed to update document", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, doc)
}

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	user, _ := models.UserFromContext(r.Context())

	if err := ds.DeleteDocument(ctx, docID, user); err != nil {
		log.Warn("failed to delete document", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, map[string]any{
		docID: true,
	})
}

func ToggleFavorite(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "ToggleFavorite"

	log = log.With(slog.String("op", op))

	doc, err := ds.ToggleFavorite(ctx, docID)
	if err != nil {
		log.Warn("failed to toggle favorite", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, doc)
}

// Move binds the document to folderId, or unfiles it when folderId is null.
func Move(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dm DocumentMover) {
	op := pkg + "Move"

	log = log.With(slog.String("op", op))

	var req dto.MoveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	doc, err := dm.Move(ctx, docID, req.FolderID)
	if err != nil {
		log.Warn("failed to move document", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, doc)
}

func LogActivity(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "LogActivity"

	log = log.With(slog.String("op", op))

	var req dto.LogActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode request", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}

	user, _ := models.UserFromContext(r.Context())

	activity, err := ds.LogActivity(ctx, docID, models.Action(req.Action), user)
	if err != nil {
		log.Warn("failed to log activity", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusCreated, activity)
}
