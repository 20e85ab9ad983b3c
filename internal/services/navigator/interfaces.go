package navigatorservice

import "doccatalog/internal/models"

type FolderLister interface {
	Folders() []models.Folder
}
