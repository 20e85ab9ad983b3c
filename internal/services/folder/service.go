package folderservice

import (
	"context"
	"doccatalog/internal/models"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "folderService/"

// FolderService owns the folder records. It rejects self-parenting but does
// not look for longer cycles: callers confirm a new parent with the navigator
// before calling Update.
type FolderService struct {
	log     *slog.Logger
	store   FolderStore
	backend FolderBackend
	cache   Cache
}

func New(log *slog.Logger, store FolderStore, backend FolderBackend, cache Cache) *FolderService {
	return &FolderService{
		log:     log,
		store:   store,
		backend: backend,
		cache:   cache,
	}
}

func (fs *FolderService) Create(ctx context.Context, requester *models.User, folder *models.Folder) (*models.Folder, error) {
	op := pkg + "Create"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to create folder", slog.String("name", folder.Name))

	// the caller's value stays untouched
	f := *folder
	folder = &f

	folder.Name = strings.TrimSpace(folder.Name)
	folder.ParentID = normalizeID(folder.ParentID)

	if err := validateFolder(folder); err != nil {
		log.Warn("invalid folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if folder.ID != "" {
		if folder.ParentID != nil && *folder.ParentID == folder.ID {
			log.Warn("folder cannot be its own parent", slog.String("folder_id", folder.ID))
			return nil, fmt.Errorf("%s: %w", op, models.NewValidationError("folder %q cannot be its own parent", folder.ID))
		}
		if _, err := fs.store.FolderByID(folder.ID); err == nil {
			log.Warn("folder id already taken", slog.String("folder_id", folder.ID))
			return nil, fmt.Errorf("%s: %w", op, models.NewValidationError("folder %q already exists", folder.ID))
		}
	} else {
		folder.ID = uuid.NewV4().String()
	}

	if folder.ParentID != nil {
		if _, err := fs.store.FolderByID(*folder.ParentID); err != nil {
			log.Warn("parent folder not found", slog.String("parent_id", *folder.ParentID))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	folder.CreatedDate = time.Now()
	folder.CreatedBy = requester.Actor()

	if err := fs.backend.CreateFolder(ctx, folder); err != nil {
		log.Error("failed to save folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	fs.store.PutFolder(*folder)
	fs.dropSnapshots(ctx, log, models.FoldersSnapshotKey)

	log.Info("folder created", slog.String("folder_id", folder.ID), slog.String("name", folder.Name))

	return folder, nil
}

// Update applies a patch. A present-but-null ParentID moves the folder to the
// top level.
func (fs *FolderService) Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error) {
	op := pkg + "Update"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to update folder", slog.String("folder_id", id))

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	if err := validatePatch(&patch); err != nil {
		log.Warn("invalid folder patch", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	folder, err := fs.store.FolderByID(id)
	if err != nil {
		log.Warn("folder not found", slog.String("folder_id", id))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if patch.Name != nil {
		folder.Name = *patch.Name
	}
	if patch.Description != nil {
		folder.Description = *patch.Description
	}

	if patch.ParentID.Present {
		parentID := normalizeID(patch.ParentID.Value)

		if parentID != nil {
			if *parentID == id {
				log.Warn("folder cannot be its own parent", slog.String("folder_id", id))
				return nil, fmt.Errorf("%s: %w", op, models.NewValidationError("folder %q cannot be its own parent", id))
			}
			if _, err := fs.store.FolderByID(*parentID); err != nil {
				log.Warn("parent folder not found", slog.String("parent_id", *parentID))
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		folder.ParentID = parentID
	}

	if err := fs.backend.UpdateFolder(ctx, folder); err != nil {
		log.Error("failed to update folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	fs.store.PutFolder(*folder)
	fs.dropSnapshots(ctx, log, models.FoldersSnapshotKey)

	log.Info("folder updated", slog.String("folder_id", id))

	return folder, nil
}

// Delete removes a folder and unbinds its documents. Subfolders keep their
// parent id even though it no longer resolves.
func (fs *FolderService) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to delete folder", slog.String("folder_id", id))

	if _, err := fs.store.FolderByID(id); err != nil {
		log.Warn("folder not found", slog.String("folder_id", id))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := fs.backend.DeleteFolder(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("folder already gone from backend", slog.String("folder_id", id))
		} else {
			log.Error("failed to delete folder", slog.String("error", err.Error()))
			return fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
	}

	unbound, err := fs.store.RemoveFolder(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	keys := []string{models.FoldersSnapshotKey}
	if len(unbound) > 0 {
		keys = append(keys, models.DocumentsSnapshotKey)
	}
	fs.dropSnapshots(ctx, log, keys...)

	log.Info("folder deleted", slog.String("folder_id", id), slog.Int("unbound_documents", len(unbound)))

	return nil
}

func (fs *FolderService) FolderByID(ctx context.Context, id string) (*models.Folder, error) {
	op := pkg + "FolderByID"

	folder, err := fs.store.FolderByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return folder, nil
}

func (fs *FolderService) ListFolders(ctx context.Context) []models.Folder {
	return fs.store.Folders()
}

func (fs *FolderService) dropSnapshots(ctx context.Context, log *slog.Logger, keys ...string) {
	if err := fs.cache.Del(ctx, keys...); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}
}

func normalizeID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	v := strings.TrimSpace(*id)
	return &v
}
