package checkout

// PurchaseRecord is the serialized snapshot of a cart submitted at checkout.
// It is derived, never retained: the sheet API is the only persistence.
type PurchaseRecord struct {
	Username  string  `json:"username"`
	Total     float64 `json:"price"`
	Items     string  `json:"items"`
	Timestamp string  `json:"timestamp"`
}

// purchaseEnvelope is the wire shape the purchase endpoint expects.
type purchaseEnvelope struct {
	Purchase PurchaseRecord `json:"purchase"`
}
