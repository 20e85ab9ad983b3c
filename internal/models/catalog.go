package models

import "time"

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	SortByName       = "name"
	SortByType       = "type"
	SortBySize       = "size"
	SortByUploadDate = "uploadDate"
)

// CatalogQuery is built by the caller from UI state and never persisted.
type CatalogQuery struct {
	Page    int
	PerPage int
	SortBy  string
	Order   SortOrder
	Search  string
	Filters *CatalogFilters
}

// CatalogFilters holds the facets. Empty slices mean "facet not active".
type CatalogFilters struct {
	Type      []string
	Category  []string
	Tags      []string
	Uploader  []string
	DateFrom  *time.Time
	DateTo    *time.Time
	FolderID  *string
	Favorites bool
}

type Pagination struct {
	TotalDocuments int  `json:"totalDocuments"`
	TotalPages     int  `json:"totalPages"`
	CurrentPage    int  `json:"currentPage"`
	PerPage        int  `json:"perPage"`
	HasNext        bool `json:"hasNext"`
	HasPrev        bool `json:"hasPrev"`
}

type Sort struct {
	SortBy string    `json:"sortBy"`
	Order  SortOrder `json:"order"`
}

type CatalogResult struct {
	Documents  []Document `json:"documents"`
	Pagination Pagination `json:"pagination"`
	Sort       Sort       `json:"sort"`
}

// Cache keys of the collection snapshots written by the loader. Mutations
// drop them so the next reload goes to the backend.
const (
	DocumentsSnapshotKey = "catalog:documents"
	FoldersSnapshotKey   = "catalog:folders"
)
