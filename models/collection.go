package models

import "time"

// Record name prefixes used by the external sync collaborator to address
// collections and items in the cloud container.
const (
	CollectionRecordPrefix = "lc_"
	ItemRecordPrefix       = "li_"
)

// Collection is a user list. TemplateData holds the JSON encoded
// [TemplateDocument] describing the fields of its items.
type Collection struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Symbol       string    `json:"symbol"`
	TemplateData []byte    `json:"template_data"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Item is one entry of a collection. PayloadData holds the JSON encoded
// [ItemPayload].
type Item struct {
	ID             string     `json:"id"`
	CollectionID   string     `json:"collection_id"`
	PayloadData    []byte     `json:"payload_data"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastExecutedAt *time.Time `json:"last_executed_at,omitempty"`
}

// CollectionRecordName returns the sync record name of a collection id.
func CollectionRecordName(id string) string {
	return CollectionRecordPrefix + id
}

// ItemRecordName returns the sync record name of an item id.
func ItemRecordName(id string) string {
	return ItemRecordPrefix + id
}
