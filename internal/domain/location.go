package domain

// FavoriteLocation is a reusable address-book entry. Locations live
// independently of trips: deleting a trip never touches them, and an
// event built from a location keeps its own copy of the address.
type FavoriteLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
