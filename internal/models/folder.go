package models

import (
	"encoding/json"
	"time"
)

type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Folder is a department node. ParentID == nil marks a root folder.
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
	CreatedBy   Actor     `json:"createdBy"`
	ParentID    *string   `json:"parentId"`
}

func (f Folder) IsRoot() bool {
	return f.ParentID == nil
}

// HasParent reports whether the folder's parent is exactly id.
func (f Folder) HasParent(id *string) bool {
	if f.ParentID == nil || id == nil {
		return f.ParentID == nil && id == nil
	}
	return *f.ParentID == *id
}

// OptionalString distinguishes an absent field from an explicit null.
type OptionalString struct {
	Present bool
	Value   *string
}

type FolderPatch struct {
	Name        *string
	Description *string
	ParentID    OptionalString
}

func (p FolderPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && !p.ParentID.Present
}

// UnmarshalJSON runs only when the key is present, so an absent key leaves
// Present false and an explicit null sets Present with a nil Value.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
