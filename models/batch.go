package models

// Batch is a set of dataset mutations that must be applied atomically.
// Deletions run before insertions; WipeAll removes every collection and item
// before anything else.
type Batch struct {
	WipeAll             bool
	DeleteCollectionIDs []string
	DeleteItemIDs       []string
	Collections         []Collection
	Items               []Item
}

// IsEmpty reports whether applying the batch would change nothing.
func (b Batch) IsEmpty() bool {
	return !b.WipeAll && len(b.DeleteCollectionIDs) == 0 && len(b.DeleteItemIDs) == 0 &&
		len(b.Collections) == 0 && len(b.Items) == 0
}

// ReconcilePlan is the outcome of planning an import or restore.
type ReconcilePlan struct {
	Batch Batch
	// SelectedCollectionID is the collection that should become active after
	// the batch is committed. Nil when nothing was accepted.
	SelectedCollectionID *string
	SkippedCollections   int
	SkippedItems         int
}

// ImportResult reports what an import or restore changed.
type ImportResult struct {
	SelectedCollectionID *string `json:"selected_collection_id"`
	Collections          int     `json:"collections"`
	Items                int     `json:"items"`
	SkippedCollections   int     `json:"skipped_collections"`
	SkippedItems         int     `json:"skipped_items"`
}

// Result summarizes the plan once its batch has been committed.
func (p ReconcilePlan) Result() ImportResult {
	return ImportResult{
		SelectedCollectionID: p.SelectedCollectionID,
		Collections:          len(p.Batch.Collections),
		Items:                len(p.Batch.Items),
		SkippedCollections:   p.SkippedCollections,
		SkippedItems:         p.SkippedItems,
	}
}
