// Package catalogstore holds the authoritative in-process copy of the folder
// table, the document collection and the activity log. The query engine and
// the mutation services share one Store; nothing else keeps a private copy.
package catalogstore

import (
	"doccatalog/internal/models"
	"slices"
	"sync"
)

// Store keeps folders in an arena (slice + id index) so listing order is the
// load/insert order and lookups are O(1). Every read returns copies.
type Store struct {
	mu sync.RWMutex

	folders   []models.Folder
	folderIdx map[string]int

	docs   []models.Document
	docIdx map[string]int

	activities []models.Activity
}

func New() *Store {
	return &Store{
		folderIdx: make(map[string]int),
		docIdx:    make(map[string]int),
	}
}

// Load replaces the folder table and the document collection. The activity
// log is append-only and survives reloads.
func (s *Store) Load(folders []models.Folder, docs []models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders = make([]models.Folder, 0, len(folders))
	for _, f := range folders {
		s.folders = append(s.folders, cloneFolder(f))
	}
	s.reindexFolders()

	s.docs = make([]models.Document, 0, len(docs))
	for _, d := range docs {
		s.docs = append(s.docs, d.Clone())
	}
	s.reindexDocs()
}

func (s *Store) Folders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, cloneFolder(f))
	}
	return out
}

func (s *Store) FolderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.folders)
}

func (s *Store) FolderByID(id string) (*models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.folderIdx[id]
	if !ok {
		return nil, models.FolderNotFound(id)
	}

	f := cloneFolder(s.folders[i])
	return &f, nil
}

// PutFolder inserts f at the end of the table or replaces the record with the
// same id in place.
func (s *Store) PutFolder(f models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.folderIdx[f.ID]; ok {
		s.folders[i] = cloneFolder(f)
		return
	}

	s.folders = append(s.folders, cloneFolder(f))
	s.folderIdx[f.ID] = len(s.folders) - 1
}

// RemoveFolder deletes the folder and clears FolderID on every document bound
// to it, under one lock. Subfolders are left untouched. It returns the ids of
// the unbound documents.
func (s *Store) RemoveFolder(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.folderIdx[id]
	if !ok {
		return nil, models.FolderNotFound(id)
	}

	s.folders = slices.Delete(s.folders, i, i+1)
	s.reindexFolders()

	unbound := make([]string, 0)
	for j := range s.docs {
		if s.docs[j].InFolder(id) {
			s.docs[j].FolderID = nil
			unbound = append(unbound, s.docs[j].ID)
		}
	}

	return unbound, nil
}

// Documents returns the whole collection in collection order.
func (s *Store) Documents() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d.Clone())
	}
	return out
}

func (s *Store) DocumentByID(id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.docIdx[id]
	if !ok {
		return nil, models.DocumentNotFound(id)
	}

	d := s.docs[i].Clone()
	return &d, nil
}

func (s *Store) DocumentsInFolder(folderID string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, 0)
	for _, d := range s.docs {
		if d.InFolder(folderID) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// UpdateDocument applies fn to the stored document and returns the result.
func (s *Store) UpdateDocument(id string, fn func(d *models.Document)) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.docIdx[id]
	if !ok {
		return nil, models.DocumentNotFound(id)
	}

	fn(&s.docs[i])

	d := s.docs[i].Clone()
	return &d, nil
}

func (s *Store) RemoveDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.docIdx[id]
	if !ok {
		return models.DocumentNotFound(id)
	}

	s.docs = slices.Delete(s.docs, i, i+1)
	s.reindexDocs()

	return nil
}

func (s *Store) AppendActivity(a models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, a)
}

// LoadActivities replaces the activity log with records read back from the
// backend, oldest first.
func (s *Store) LoadActivities(activities []models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = slices.Clone(activities)
}

// ActivitiesFor returns the log of one document, newest first. Records with
// equal timestamps come out in reverse append order.
func (s *Store) ActivitiesFor(documentID string) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, 0)
	for i := len(s.activities) - 1; i >= 0; i-- {
		if s.activities[i].DocumentID == documentID {
			out = append(out, s.activities[i])
		}
	}

	slices.SortStableFunc(out, func(a, b models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return out
}

func (s *Store) reindexFolders() {
	s.folderIdx = make(map[string]int, len(s.folders))
	for i, f := range s.folders {
		s.folderIdx[f.ID] = i
	}
}

func (s *Store) reindexDocs() {
	s.docIdx = make(map[string]int, len(s.docs))
	for i, d := range s.docs {
		s.docIdx[d.ID] = i
	}
}

func cloneFolder(f models.Folder) models.Folder {
	c := f
	if f.ParentID != nil {
		id := *f.ParentID
		c.ParentID = &id
	}
	return c
}
