package loaderservice

import (
	"context"
	"doccatalog/internal/models"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const pkg = "loaderService/"

// LoaderService fills the store with the folder and document collections.
// Both are fetched whole; the backend offers no paging or filtering.
type LoaderService struct {
	log        *slog.Logger
	store      Store
	folders    FolderSource
	documents  DocumentSource
	activities ActivitySource
	snapshots  Snapshots
}

func New(
	log *slog.Logger,
	store Store,
	folders FolderSource,
	documents DocumentSource,
	activities ActivitySource,
	snapshots Snapshots,
) *LoaderService {
	return &LoaderService{
		log:        log,
		store:      store,
		folders:    folders,
		documents:  documents,
		activities: activities,
		snapshots:  snapshots,
	}
}

// Load fills the store at startup. Cached snapshots are preferred over the
// backend. The activity log always comes from the backend.
func (ls *LoaderService) Load(ctx context.Context) error {
	op := pkg + "Load"

	log := ls.log.With(slog.String("op", op))

	log.Debug("attempting to load catalog")

	var (
		folders    []models.Folder
		docs       []models.Document
		activities []models.Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		folders, err = ls.loadFolders(gctx, log)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = ls.loadDocuments(gctx, log)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = ls.activities.Activities(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to load catalog", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	ls.store.Load(folders, docs)
	ls.store.LoadActivities(activities)

	log.Info("catalog loaded",
		slog.Int("folders", len(folders)),
		slog.Int("documents", len(docs)),
		slog.Int("activities", len(activities)))

	return nil
}

// Refresh drops the snapshots and reloads from the backend.
func (ls *LoaderService) Refresh(ctx context.Context) error {
	op := pkg + "Refresh"

	if err := ls.snapshots.Del(ctx, models.DocumentsSnapshotKey, models.FoldersSnapshotKey); err != nil {
		ls.log.Error("failed to drop snapshots", slog.String("op", op), slog.String("error", err.Error()))
	}

	if err := ls.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (ls *LoaderService) loadFolders(ctx context.Context, log *slog.Logger) ([]models.Folder, error) {
	folders, ok, err := ls.snapshots.Folders(ctx)
	if err != nil {
		log.Warn("failed to read folder snapshot", slog.String("error", err.Error()))
	}
	if ok && err == nil {
		log.Debug("folders loaded from snapshot")
		return folders, nil
	}

	folders, err = ls.folders.Folders(ctx)
	if err != nil {
		return nil, err
	}

	if err := ls.snapshots.SaveFolders(ctx, folders); err != nil {
		log.Warn("failed to save folder snapshot", slog.String("error", err.Error()))
	}

	return folders, nil
}

func (ls *LoaderService) loadDocuments(ctx context.Context, log *slog.Logger) ([]models.Document, error) {
	docs, ok, err := ls.snapshots.Documents(ctx)
	if err != nil {
		log.Warn("failed to read document snapshot", slog.String("error", err.Error()))
	}
	if ok && err == nil {
		log.Debug("documents loaded from snapshot")
		return docs, nil
	}

	docs, err = ls.documents.Documents(ctx)
	if err != nil {
		return nil, err
	}

	if err := ls.snapshots.SaveDocuments(ctx, docs); err != nil {
		log.Warn("failed to save document snapshot", slog.String("error", err.Error()))
	}

	return docs, nil
}
