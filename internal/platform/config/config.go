package config

import (
	"os"
	"time"
)

// Sheet describes how raw spreadsheet records map onto products. The sheet
// API exposes column names verbatim, so none of these are structural
// guarantees; they are the single configured mapping from record to Product.
type Sheet struct {
	Array      string
	NameField  string
	PriceField string
	StockField string
}

// Config captures everything main needs to wire the storefront.
type Config struct {
	Addr string

	CatalogURL  string
	PurchaseURL string

	// AssistantURL points at an external inference endpoint. Empty means the
	// built-in catalog matcher answers /ask locally.
	AssistantURL string

	Sheet Sheet

	// ClientTimeout bounds every outbound call to the sheet API. The core
	// contract enforces no timeout of its own; this is the transport layer's.
	ClientTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// Defaults mirror the storefront's original fixed endpoints.
func FromEnv() Config {
	return Config{
		Addr:         envOr("MEDSTORE_ADDR", ":8080"),
		CatalogURL:   envOr("MEDSTORE_CATALOG_URL", "https://api.sheety.co/e5f42c6a1510007d10970f8672a067dd/%D8%AF%D8%A7%D8%AA%D8%A7%20%D8%AA%D8%AC%D8%B1%D8%A8%D8%A9/medicinesPrices"),
		PurchaseURL:  envOr("MEDSTORE_PURCHASE_URL", "https://api.sheety.co/e5f42c6a1510007d10970f8672a067dd/%D8%AF%D8%A7%D8%AA%D8%A7%20%D8%AA%D8%AC%D8%B1%D8%A8%D8%A9/purchase"),
		AssistantURL: os.Getenv("MEDSTORE_ASSISTANT_URL"),
		Sheet: Sheet{
			Array:      envOr("MEDSTORE_SHEET_ARRAY", "medicinesPrices"),
			NameField:  envOr("MEDSTORE_SHEET_NAME_FIELD", "medicine"),
			PriceField: envOr("MEDSTORE_SHEET_PRICE_FIELD", "price"),
			StockField: envOr("MEDSTORE_SHEET_STOCK_FIELD", "stock"),
		},
		ClientTimeout: 15 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
