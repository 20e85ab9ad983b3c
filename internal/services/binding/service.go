package bindingservice

import (
	"context"
	"doccatalog/internal/models"
	"fmt"
	"log/slog"
)

const pkg = "bindingService/"

// BindingService files documents into folders. A non-nil FolderID always
// names an existing folder at the moment it is written; only a folder delete
// clears it afterwards.
type BindingService struct {
	log     *slog.Logger
	store   CatalogStore
	backend DocumentBackend
	cache   Cache
}

func New(log *slog.Logger, store CatalogStore, backend DocumentBackend, cache Cache) *BindingService {
	return &BindingService{
		log:     log,
		store:   store,
		backend: backend,
		cache:   cache,
	}
}

func (bs *BindingService) InFolder(ctx context.Context, folderID string) ([]models.Document, error) {
	op := pkg + "InFolder"

	if _, err := bs.store.FolderByID(folderID); err != nil {
		bs.log.Warn("folder not found", slog.String("op", op), slog.String("folder_id", folderID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bs.store.DocumentsInFolder(folderID), nil
}

// Move rebinds a document. A nil folderID unfiles it. No type or privacy
// compatibility is checked.
func (bs *BindingService) Move(ctx context.Context, documentID string, folderID *string) (*models.Document, error) {
	op := pkg + "Move"

	log := bs.log.With(slog.String("op", op))

	log.Debug("attempting to move document", slog.String("doc_id", documentID))

	if _, err := bs.store.DocumentByID(documentID); err != nil {
		log.Warn("document not found", slog.String("doc_id", documentID))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if folderID != nil {
		if _, err := bs.store.FolderByID(*folderID); err != nil {
			log.Warn("target folder not found", slog.String("folder_id", *folderID))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := bs.backend.SetFolder(ctx, documentID, folderID); err != nil {
		log.Error("failed to save document folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	doc, err := bs.store.UpdateDocument(documentID, func(d *models.Document) {
		if folderID == nil {
			d.FolderID = nil
			return
		}
		id := *folderID
		d.FolderID = &id
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bs.cache.Del(ctx, models.DocumentsSnapshotKey); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}

	log.Info("document moved", slog.String("doc_id", documentID))

	return doc, nil
}

// Counts returns the number of documents bound to each of folderIDs. Ids
// with no documents map to zero.
func (bs *BindingService) Counts(ctx context.Context, folderIDs []string) map[string]int {
	counts := make(map[string]int, len(folderIDs))
	for _, id := range folderIDs {
		counts[id] = 0
	}

	for _, d := range bs.store.Documents() {
		if d.FolderID == nil {
			continue
		}
		if _, ok := counts[*d.FolderID]; ok {
			counts[*d.FolderID]++
		}
	}

	return counts
}
