package model

// QueueStatus is the lifecycle state of a fetch-queue row. Transitions only
// move forward: todo → done or todo → skip. Rows already done or skipped are
// never reprocessed.
type QueueStatus string

const (
	StatusTodo QueueStatus = "todo"
	StatusDone QueueStatus = "done"
	StatusSkip QueueStatus = "skip"
)

// QueueRow is one outstanding piece of documentation-retrieval work. The queue
// file is the single source of truth for what still needs fetching; its
// persisted statuses make interrupted runs resumable.
type QueueRow struct {
	Manufacturer string      // manufacturer_guess
	SKU          string      // model_sku
	Category     string      // category_guess
	Score        int         // priority_score (currently = occurrence count)
	Status       QueueStatus // todo, done, skip
	Notes        string      // free text
}

// Terminal reports whether the row's lifecycle is finished.
func (r *QueueRow) Terminal() bool {
	return r.Status == StatusDone || r.Status == StatusSkip
}
