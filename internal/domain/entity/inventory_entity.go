package entity

import "time"

// InventoryItem is a purchased cosmetic. ID is the shop catalog id, not a
// row id: a user may own several instances of the same catalog item.
// Animal is nil while the item is not equipped onto any animal.
type InventoryItem struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Equipped     bool      `json:"equipped"`
	Animal       *string   `json:"animal"`
	PurchaseTime time.Time `json:"purchaseTime"`
}
