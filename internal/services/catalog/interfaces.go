package catalogservice

import "doccatalog/internal/models"

type DocumentSource interface {
	Documents() []models.Document
}
