package catalog

// Product is one purchasable entry normalized from a raw sheet record. It is
// immutable once created and discarded on the next load.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
