package navigatorservice

import (
	"doccatalog/internal/models"
	"slices"
)

// tree is an arena view over one folder listing: folders keep listing order
// and parent pointers are resolved through the id index.
type tree struct {
	folders []models.Folder
	idx     map[string]int
}

func newTree(folders []models.Folder) tree {
	idx := make(map[string]int, len(folders))
	for i, f := range folders {
		idx[f.ID] = i
	}
	return tree{folders: folders, idx: idx}
}

func (t tree) lookup(id string) (int, bool) {
	i, ok := t.idx[id]
	return i, ok
}

// ancestors walks parent pointers from the folder at i and returns the chain
// root-first, excluding the folder itself. The walk takes at most len(folders)
// steps; a longer walk means the parent graph has a cycle. A parent id that
// no longer resolves (its folder was deleted) ends the chain.
func (t tree) ancestors(i int) ([]int, error) {
	limit := len(t.folders)
	chain := make([]int, 0)

	parent := t.folders[i].ParentID
	for steps := 0; parent != nil; steps++ {
		if steps >= limit {
			return nil, &models.CycleDetectedError{FolderID: t.folders[i].ID, Steps: steps}
		}

		j, ok := t.idx[*parent]
		if !ok {
			break
		}

		chain = append(chain, j)
		parent = t.folders[j].ParentID
	}

	slices.Reverse(chain)

	return chain, nil
}

// descendsFrom reports whether ancestorID appears in the ancestor chain of
// the folder at i.
func (t tree) descendsFrom(i int, ancestorID string) (bool, error) {
	chain, err := t.ancestors(i)
	if err != nil {
		return false, err
	}

	for _, j := range chain {
		if t.folders[j].ID == ancestorID {
			return true, nil
		}
	}

	return false, nil
}

func (t tree) pick(ids []int) []models.Folder {
	out := make([]models.Folder, 0, len(ids))
	for _, i := range ids {
		out = append(out, t.folders[i])
	}
	return out
}
