package extract

// Stats counts what happened during one extraction run. Discarded rows
// are expected noise filtering and are only ever reported in aggregate.
type Stats struct {
	Tier     Tier   `json:"tier"`
	Template string `json:"template,omitempty"`

	RowsVisited          int `json:"rows_visited"`
	RowsDiscarded        int `json:"rows_discarded"`
	AggregateRows        int `json:"aggregate_rows"`
	ItemsFromFingerprint int `json:"items_from_fingerprint,omitempty"`
	ItemsFromText        int `json:"items_from_text,omitempty"`
}
