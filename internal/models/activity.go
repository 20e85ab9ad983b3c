package models

import "time"

type Action string

const (
	ActionUpload   Action = "upload"
	ActionDownload Action = "download"
	ActionView     Action = "view"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
)

var knownActions = map[Action]bool{
	ActionUpload:   true,
	ActionDownload: true,
	ActionView:     true,
	ActionEdit:     true,
	ActionDelete:   true,
}

func (a Action) IsValid() bool {
	return knownActions[a]
}

// Activity is an append-only audit record. It outlives the document it refers to.
type Activity struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Action     Action    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}
