package documentservice

import (
	"context"
	"doccatalog/internal/models"
	"errors"
	"fmt"
	"log/slog"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

// DocumentService mutates the shared document collection and keeps the
// activity log. Every change lands in the backend first, then in the store
// the catalog reads from.
type DocumentService struct {
	log          *slog.Logger
	store        CatalogStore
	docRepo      DocumentRepository
	activityRepo ActivityRepository
	cache        Cache
	now          func() time.Time
}

func New(
	log *slog.Logger,
	store CatalogStore,
	docRepo DocumentRepository,
	activityRepo ActivityRepository,
	cache Cache,
) *DocumentService {
	return &DocumentService{
		log:          log,
		store:        store,
		docRepo:      docRepo,
		activityRepo: activityRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// DocumentByID returns a document and records a view by the requester.
func (ds *DocumentService) DocumentByID(ctx context.Context, docID string, requester *models.User) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.store.DocumentByID(docID)
	if err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds.recordActivity(ctx, log, doc.ID, models.ActionView, requester)

	return doc, nil
}

func (ds *DocumentService) ToggleFavorite(ctx context.Context, docID string) (*models.Document, error) {
	op := pkg + "ToggleFavorite"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to toggle favorite", slog.String("doc_id", docID))

	doc, err := ds.store.DocumentByID(docID)
	if err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	favorited := !doc.Favorited

	if err := ds.docRepo.SetFavorite(ctx, docID, favorited); err != nil {
		log.Error("failed to save favorite flag", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	doc, err = ds.store.UpdateDocument(docID, func(d *models.Document) {
		d.Favorited = favorited
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds.dropSnapshot(ctx, log)

	log.Debug("favorite toggled", slog.String("doc_id", docID), slog.Bool("favorited", favorited))

	return doc, nil
}

func (ds *DocumentService) UpdateDocument(ctx context.Context, docID string, patch models.DocumentPatch, requester *models.User) (*models.Document, error) {
	op := pkg + "UpdateDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to update document", slog.String("doc_id", docID))

	if err := validatePatch(&patch); err != nil {
		log.Warn("invalid document patch", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc, err := ds.store.DocumentByID(docID)
	if err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patch.Apply(doc)

	if err := ds.docRepo.UpdateDocument(ctx, doc); err != nil {
		log.Error("failed to update document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	doc, err = ds.store.UpdateDocument(docID, patch.Apply)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds.dropSnapshot(ctx, log)
	ds.recordActivity(ctx, log, docID, models.ActionEdit, requester)

	log.Info("document updated", slog.String("doc_id", docID))

	return doc, nil
}

// DeleteDocument removes the document. Its activity log is kept and gains a
// delete record.
func (ds *DocumentService) DeleteDocument(ctx context.Context, docID string, requester *models.User) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to delete document", slog.String("doc_id", docID), slog.String("user_id", requester.Actor().ID))

	if _, err := ds.store.DocumentByID(docID); err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := ds.docRepo.Delete(ctx, docID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("document already gone from backend", slog.String("doc_id", docID))
		} else {
			log.Error("failed to delete document", slog.String("error", err.Error()))
			return fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	ds.recordActivity(ctx, log, docID, models.ActionDelete, requester)

	if err := ds.store.RemoveDocument(docID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ds.dropSnapshot(ctx, log)

	log.Info("document deleted", slog.String("doc_id", docID))

	return nil
}

// RecordDownload logs a download and returns the address the file is served from.
func (ds *DocumentService) RecordDownload(ctx context.Context, docID string, requester *models.User) (string, error) {
	op := pkg + "RecordDownload"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.store.DocumentByID(docID)
	if err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	ds.recordActivity(ctx, log, docID, models.ActionDownload, requester)

	return doc.URL, nil
}

// LogActivity appends one record to the document's log. Records are never
// changed afterwards.
func (ds *DocumentService) LogActivity(ctx context.Context, docID string, action models.Action, requester *models.User) (*models.Activity, error) {
	op := pkg + "LogActivity"

	log := ds.log.With(slog.String("op", op))

	if !action.IsValid() {
		log.Warn("unknown action", slog.String("action", string(action)))
		return nil, fmt.Errorf("%s: %w", op, models.NewValidationError("unknown action %q", action))
	}

	if _, err := ds.store.DocumentByID(docID); err != nil {
		log.Warn("document not found", slog.String("doc_id", docID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	activity := ds.newActivity(docID, action, requester)

	if err := ds.activityRepo.CreateActivity(ctx, &activity); err != nil {
		log.Error("failed to save activity", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ds.store.AppendActivity(activity)

	return &activity, nil
}

// Activities returns the log of a document, newest first. Deleted documents
// keep their log.
func (ds *DocumentService) Activities(ctx context.Context, docID string) []models.Activity {
	return ds.store.ActivitiesFor(docID)
}

// recordActivity is the best-effort variant of LogActivity used as a side
// effect of other operations.
func (ds *DocumentService) recordActivity(ctx context.Context, log *slog.Logger, docID string, action models.Action, requester *models.User) {
	activity := ds.newActivity(docID, action, requester)

	if err := ds.activityRepo.CreateActivity(ctx, &activity); err != nil {
		log.Error("failed to save activity", slog.String("action", string(action)), slog.String("error", err.Error()))
		return
	}

	ds.store.AppendActivity(activity)
}

func (ds *DocumentService) newActivity(docID string, action models.Action, requester *models.User) models.Activity {
	actor := requester.Actor()

	return models.Activity{
		ID:         uuid.NewV4().String(),
		DocumentID: docID,
		UserID:     actor.ID,
		UserName:   actor.Name,
		Action:     action,
		Timestamp:  ds.now(),
	}
}

func (ds *DocumentService) dropSnapshot(ctx context.Context, log *slog.Logger) {
	if err := ds.cache.Del(ctx, models.DocumentsSnapshotKey); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}
}
