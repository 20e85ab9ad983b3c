package dto

import "doccatalog/internal/models"

type CreateFolderRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
}

func (r CreateFolderRequest) Folder() *models.Folder {
	return &models.Folder{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ParentID:    r.ParentID,
	}
}

// UpdateFolderRequest tells a missing parentId (keep) from null (move to top level).
type UpdateFolderRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	ParentID    models.OptionalString `json:"parentId"`
}

func (r UpdateFolderRequest) Patch() models.FolderPatch {
	return models.FolderPatch{
		Name:        r.Name,
		Description: r.Description,
		ParentID:    r.ParentID,
	}
}

type FolderResponse struct {
	models.Folder
	DocumentCount int `json:"documentCount"`
}
