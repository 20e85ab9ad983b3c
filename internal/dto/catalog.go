package dto

import (
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/query"
	"net/url"
)

// CatalogQuery builds a query from the URL. Unparseable values are dropped
// rather than rejected; the engine applies its own defaults.
func CatalogQuery(values url.Values) models.CatalogQuery {
	filters := &models.CatalogFilters{
		Type:      utils.ParseList(values, "type"),
		Category:  utils.ParseList(values, "category"),
		Tags:      utils.ParseList(values, "tags"),
		Uploader:  utils.ParseList(values, "uploader"),
		DateFrom:  utils.ParseDate(values.Get("dateFrom"), false),
		DateTo:    utils.ParseDate(values.Get("dateTo"), true),
		FolderID:  utils.ParseID(values.Get("folderId")),
		Favorites: utils.ParseBool(values.Get("favorites")),
	}

	return models.CatalogQuery{
		Page:    utils.ParseLimit(values.Get("page")),
		PerPage: utils.ParseLimit(values.Get("perPage")),
		SortBy:  values.Get("sortBy"),
		Order:   models.SortOrder(values.Get("order")),
		Search:  values.Get("search"),
		Filters: filters,
	}
}
