package dto

import "doccatalog/internal/models"

type UpdateDocumentRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Privacy     *string   `json:"privacy"`
	Tags        *[]string `json:"tags"`
}

func (r UpdateDocumentRequest) Patch() models.DocumentPatch {
	return models.DocumentPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Privacy:     r.Privacy,
		Tags:        r.Tags,
	}
}

// MoveDocumentRequest binds a document; a null folderId unfiles it.
type MoveDocumentRequest struct {
	FolderID *string `json:"folderId"`
}

type DownloadResponse struct {
	URL string `json:"url"`
}

type LogActivityRequest struct {
	Action string `json:"action"`
}
