package utils

import "github.com/google/uuid"

// RecordIDs issues identifiers for collections, items and template fields.
// Ids are lowercase UUIDv7 strings, so records created in one run sort by
// creation time.
type RecordIDs struct {
	newV7 func() (uuid.UUID, error)
}

func NewRecordIDs() *RecordIDs {
	return &RecordIDs{newV7: uuid.NewV7}
}

// Generate never fails: a clock error degrades to a random UUIDv4.
func (g *RecordIDs) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
