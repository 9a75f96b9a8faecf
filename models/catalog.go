package models

// Service describes one entry of the fixed service catalog.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`    // In MAD.
	Duration int    `json:"duration"` // In minutes.
	Desc     string `json:"desc"`
}

// ShopHours lists opening hours per day group.
type ShopHours struct {
	MonFri string `json:"mon_fri"`
	Sat    string `json:"sat"`
	Sun    string `json:"sun"`
}

// ShopInfo holds the shop identity and contact details.
type ShopInfo struct {
	Name    string    `json:"name"`
	Tagline string    `json:"tagline"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Hours   ShopHours `json:"hours"`
}
