package catalogservice

import (
	"cmp"
	"doccatalog/internal/models"
	"slices"
	"strings"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Limits bounds the page size of a query.
type Limits struct {
	DefaultPerPage int
	MaxPerPage     int
}

func DefaultLimits() Limits {
	return Limits{DefaultPerPage: DefaultPerPage, MaxPerPage: MaxPerPage}
}

// Run evaluates q over docs. The stages always run in the same order:
// folder scope, search, facets, date range, favorites, sort, paginate.
// Run never fails and never modifies docs.
func Run(docs []models.Document, q models.CatalogQuery) models.CatalogResult {
	return DefaultLimits().Run(docs, q)
}

func (l Limits) Run(docs []models.Document, q models.CatalogQuery) models.CatalogResult {
	q = l.normalize(q)

	f := q.Filters
	if f == nil {
		f = &models.CatalogFilters{}
	}
	search := strings.ToLower(q.Search)

	matched := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if f.FolderID != nil && !d.InFolder(*f.FolderID) {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		if !matchesFacets(d, f) {
			continue
		}
		if !inDateRange(d, f) {
			continue
		}
		if f.Favorites && !d.Favorited {
			continue
		}
		matched = append(matched, d.Clone())
	}

	sortBy, order := sortDocuments(matched, q.SortBy, q.Order)

	return models.CatalogResult{
		Documents:  paginate(matched, q.Page, q.PerPage),
		Pagination: pagination(len(matched), q.Page, q.PerPage),
		Sort:       models.Sort{SortBy: sortBy, Order: order},
	}
}

func (l Limits) normalize(q models.CatalogQuery) models.CatalogQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = l.DefaultPerPage
	}
	if q.PerPage > l.MaxPerPage {
		q.PerPage = l.MaxPerPage
	}
	if q.Order != models.OrderAsc {
		q.Order = models.OrderDesc
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func matchesSearch(d models.Document, term string) bool {
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Description), term)
}

func matchesFacets(d models.Document, f *models.CatalogFilters) bool {
	if len(f.Type) > 0 && !slices.Contains(f.Type, d.Type) {
		return false
	}
	if len(f.Category) > 0 && !slices.Contains(f.Category, d.Category) {
		return false
	}
	if len(f.Uploader) > 0 && !slices.Contains(f.Uploader, d.Uploader.ID) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(d.Tags, func(tag string) bool {
		return slices.Contains(f.Tags, tag)
	}) {
		return false
	}
	return true
}

func inDateRange(d models.Document, f *models.CatalogFilters) bool {
	if f.DateFrom != nil && d.UploadDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && d.UploadDate.After(*f.DateTo) {
		return false
	}
	return true
}

// sortDocuments sorts in place and reports the sort actually applied.
func sortDocuments(docs []models.Document, sortBy string, order models.SortOrder) (string, models.SortOrder) {
	var compare func(a, b models.Document) int

	switch sortBy {
	case models.SortByName:
		compare = func(a, b models.Document) int { return strings.Compare(a.Name, b.Name) }
	case models.SortByType:
		compare = func(a, b models.Document) int { return strings.Compare(a.Type, b.Type) }
	case models.SortBySize:
		compare = func(a, b models.Document) int { return cmp.Compare(a.Size, b.Size) }
	case models.SortByUploadDate:
		compare = byUploadDate
	default:
		sortBy, order, compare = fallbackSort()
	}

	if order == models.OrderDesc {
		asc := compare
		compare = func(a, b models.Document) int { return asc(b, a) }
	}

	slices.SortStableFunc(docs, compare)

	return sortBy, order
}

// fallbackSort is used for any sortBy the engine does not know.
func fallbackSort() (string, models.SortOrder, func(a, b models.Document) int) {
	return models.SortByUploadDate, models.OrderDesc, byUploadDate
}

func byUploadDate(a, b models.Document) int {
	return a.UploadDate.Compare(b.UploadDate)
}

func paginate(docs []models.Document, page, perPage int) []models.Document {
	// compare page counts first; (page-1)*perPage overflows for huge pages
	if page > (len(docs)+perPage-1)/perPage {
		return []models.Document{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(docs))
	return docs[start:end]
}

func pagination(total, page, perPage int) models.Pagination {
	totalPages := max(1, (total+perPage-1)/perPage)

	return models.Pagination{
		TotalDocuments: total,
		TotalPages:     totalPages,
		CurrentPage:    page,
		PerPage:        perPage,
		HasNext:        page < totalPages,
		HasPrev:        page > 1,
	}
}
