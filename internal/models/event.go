package models

// Cat lifecycle operations published as events.
const (
	CatCreated = "created"
	CatUpdated = "updated"
	CatDeleted = "deleted"
)

// CatEvent describes a committed change to a cat record.
type CatEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds)
	CatID     int64  `json:"cat_id"`    // Affected cat
	UserID    int64  `json:"user_id"`   // Acting owner
	Operation string `json:"operation"` // created, updated or deleted
}
