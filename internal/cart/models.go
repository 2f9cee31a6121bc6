package cart

// Line is one product's entry in the cart. Price is snapshotted when the line
// is created and never updated by later adds; the line is removed outright
// rather than left at quantity zero.
type Line struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Summary is the derived view the UI renders from: lines in insertion order,
// grand total and total item count.
type Summary struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
