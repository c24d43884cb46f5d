package models

// Product is a catalog entry. Price is in paise (INR minor units); monetary
// values never touch floating point. Products are immutable once seeded.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
}
