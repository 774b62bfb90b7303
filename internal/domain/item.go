package domain

import "time"

// Item is a reported lost or found item.
//
// IsLost distinguishes the two report kinds: true for "I lost this",
// false for "I found this". Only found items accept claims. Claimed and
// ClaimedByUser are set server-side when a claim is approved; the client
// never mutates an item directly except by triggering claim actions.
type Item struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category"`
	Location      string     `json:"location"`
	IsLost        bool       `json:"isLost"`
	Claimed       bool       `json:"claimed"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	User          *UserRef   `json:"user,omitempty"`
	ClaimedByUser *UserRef   `json:"claimedByUser,omitempty"`
	ClaimedDate   *time.Time `json:"claimedDate,omitempty"`
}

// ReportedBy reports whether userID is the item's reporter.
func (i *Item) ReportedBy(userID int64) bool {
	return i != nil && i.User != nil && i.User.ID == userID
}

// NewItem is the JSON part of the multipart POST /api/items request.
type NewItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	IsLost      bool   `json:"isLost"`
	UserID      int64  `json:"userId"`
}
