package navigatorservice

import (
	"context"
	"doccatalog/internal/models"
	"fmt"
	"log/slog"
)

const pkg = "navigatorService/"

// Navigator answers tree questions over the current folder table. Each call
// takes a fresh listing; nothing is cached between calls.
type Navigator struct {
	log     *slog.Logger
	folders FolderLister
}

func New(log *slog.Logger, folders FolderLister) *Navigator {
	return &Navigator{
		log:     log,
		folders: folders,
	}
}

// AncestorsOf returns the ancestor chain of a folder, root first, without the
// folder itself.
func (n *Navigator) AncestorsOf(ctx context.Context, folderID string) ([]models.Folder, error) {
	op := pkg + "AncestorsOf"

	log := n.log.With(slog.String("op", op))

	t := newTree(n.folders.Folders())

	i, ok := t.lookup(folderID)
	if !ok {
		log.Warn("folder not found", slog.String("folder_id", folderID))
		return nil, fmt.Errorf("%s: %w", op, models.FolderNotFound(folderID))
	}

	chain, err := t.ancestors(i)
	if err != nil {
		log.Error("folder tree is corrupt", slog.String("folder_id", folderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t.pick(chain), nil
}

// Breadcrumbs is AncestorsOf followed by the folder itself.
func (n *Navigator) Breadcrumbs(ctx context.Context, folderID string) ([]models.Folder, error) {
	op := pkg + "Breadcrumbs"

	t := newTree(n.folders.Folders())

	i, ok := t.lookup(folderID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, models.FolderNotFound(folderID))
	}

	chain, err := t.ancestors(i)
	if err != nil {
		n.log.Error("folder tree is corrupt", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t.pick(append(chain, i)), nil
}

// ChildrenOf lists the folders whose parent is parentID (nil for the roots)
// in listing order. Presentation order is the caller's job.
func (n *Navigator) ChildrenOf(ctx context.Context, parentID *string) []models.Folder {
	children := make([]models.Folder, 0)
	for _, f := range n.folders.Folders() {
		if f.HasParent(parentID) {
			children = append(children, f)
		}
	}
	return children
}

// ValidReparentTargets lists every folder that folderID could be moved under:
// all folders except folderID itself and its descendants, in listing order.
// Candidates whose own ancestor walk is corrupt are left out.
func (n *Navigator) ValidReparentTargets(ctx context.Context, folderID string) ([]models.Folder, error) {
	op := pkg + "ValidReparentTargets"

	log := n.log.With(slog.String("op", op))

	t := newTree(n.folders.Folders())

	if _, ok := t.lookup(folderID); !ok {
		log.Warn("folder not found", slog.String("folder_id", folderID))
		return nil, fmt.Errorf("%s: %w", op, models.FolderNotFound(folderID))
	}

	targets := make([]models.Folder, 0, len(t.folders))

	for i, candidate := range t.folders {
		if candidate.ID == folderID {
			continue
		}

		below, err := t.descendsFrom(i, folderID)
		if err != nil {
			log.Warn("skipping candidate with corrupt ancestry",
				slog.String("candidate_id", candidate.ID),
				slog.String("error", err.Error()))
			continue
		}

		if !below {
			targets = append(targets, candidate)
		}
	}

	log.Debug("reparent targets computed",
		slog.String("folder_id", folderID),
		slog.Int("count", len(targets)))

	return targets, nil
}

// CheckReparent validates moving folderID under parentID. A nil parent (move
// to the top level) is always allowed.
func (n *Navigator) CheckReparent(ctx context.Context, folderID string, parentID *string) error {
	op := pkg + "CheckReparent"

	if parentID == nil {
		return nil
	}

	if *parentID == folderID {
		return fmt.Errorf("%s: %w", op, models.NewValidationError("folder %q cannot be its own parent", folderID))
	}

	targets, err := n.ValidReparentTargets(ctx, folderID)
	if err != nil {
		return err
	}

	for _, f := range targets {
		if f.ID == *parentID {
			return nil
		}
	}

	if !n.exists(*parentID) {
		return fmt.Errorf("%s: %w", op, models.FolderNotFound(*parentID))
	}

	n.log.Warn("rejected reparent into own subtree",
		slog.String("op", op),
		slog.String("folder_id", folderID),
		slog.String("parent_id", *parentID))

	return fmt.Errorf("%s: %w", op, models.NewValidationError("folder %q cannot be moved under its descendant %q", folderID, *parentID))
}

func (n *Navigator) exists(id string) bool {
	_, ok := newTree(n.folders.Folders()).lookup(id)
	return ok
}
