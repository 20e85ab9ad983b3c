package models

import (
	"slices"
	"time"
)

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Document is a catalog entry. FolderID is a weak reference: nil means unfiled.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Size        int64     `json:"size"`
	UploadDate  time.Time `json:"uploadDate"`
	Uploader    Actor     `json:"uploader"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Privacy     string    `json:"privacy"`
	FolderID    *string   `json:"folderId"`
	Favorited   bool      `json:"favorited"`
	URL         string    `json:"url"`
}

// Clone returns a copy that shares no memory with d.
func (d Document) Clone() Document {
	c := d
	c.Tags = slices.Clone(d.Tags)
	if d.FolderID != nil {
		id := *d.FolderID
		c.FolderID = &id
	}
	return c
}

func (d Document) InFolder(id string) bool {
	return d.FolderID != nil && *d.FolderID == id
}

type DocumentPatch struct {
	Name        *string
	Description *string
	Category    *string
	Privacy     *string
	Tags        *[]string
}

func (p DocumentPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.Privacy == nil && p.Tags == nil
}

func (p DocumentPatch) Apply(d *Document) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Privacy != nil {
		d.Privacy = *p.Privacy
	}
	if p.Tags != nil {
		d.Tags = slices.Clone(*p.Tags)
	}
}
