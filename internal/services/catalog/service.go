package catalogservice

import (
	"context"
	"doccatalog/internal/models"
	"log/slog"
	"sync/atomic"
)

const pkg = "catalogService/"

// CatalogService answers catalog queries from the current store snapshot.
// Results are never cached between calls.
type CatalogService struct {
	log    *slog.Logger
	source DocumentSource
	limits Limits
}

func New(log *slog.Logger, source DocumentSource, limits Limits) *CatalogService {
	if limits.DefaultPerPage < 1 {
		limits.DefaultPerPage = DefaultPerPage
	}
	if limits.MaxPerPage < limits.DefaultPerPage {
		limits.MaxPerPage = max(MaxPerPage, limits.DefaultPerPage)
	}

	return &CatalogService{
		log:    log,
		source: source,
		limits: limits,
	}
}

func (cs *CatalogService) Query(ctx context.Context, q models.CatalogQuery) models.CatalogResult {
	op := pkg + "Query"

	res := cs.limits.Run(cs.source.Documents(), q)

	cs.log.Debug("catalog query served",
		slog.String("op", op),
		slog.String("sort_by", res.Sort.SortBy),
		slog.Int("page", res.Pagination.CurrentPage),
		slog.Int("total", res.Pagination.TotalDocuments),
	)

	return res
}

// Count is the number of documents in the collection, unfiltered.
func (cs *CatalogService) Count(ctx context.Context) int {
	return len(cs.source.Documents())
}

// Generations hands out increasing request numbers. A caller that issues
// overlapping queries keeps the number it was given and drops the result if
// a newer request has started since.
type Generations struct {
	n atomic.Uint64
}

func (g *Generations) Next() uint64 {
	return g.n.Add(1)
}

func (g *Generations) IsCurrent(gen uint64) bool {
	return g.n.Load() == gen
}
