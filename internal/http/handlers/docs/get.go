package docs

import (
	"context"
	"doccatalog/internal/dto"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	user, _ := models.UserFromContext(r.Context())

	doc, err := ds.DocumentByID(ctx, docID, user)
	if err != nil {
		log.Warn("failed to get document", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, doc)
}

// Download records the download and hands back the file address; the
// bytes themselves are served elsewhere.
func Download(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "Download"

	log = log.With(slog.String("op", op))

	user, _ := models.UserFromContext(r.Context())

	url, err := ds.RecordDownload(ctx, docID, user)
	if err != nil {
		log.Warn("failed to record download", slog.String("error", err.Error()))
		utils.WriteError(w, err)
		return
	}

	respond(w, log, http.StatusOK, dto.DownloadResponse{URL: url})
}

func Activities(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, ds DocumentService) {
	op := pkg + "Activities"

	log = log.With(slog.String("op", op))

	respond(w, log, http.StatusOK, ds.Activities(ctx, docID))
}
