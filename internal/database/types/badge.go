package types

// BadgeProgress reports a user's standing against one badge in the catalog.
type BadgeProgress struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Earned      bool    `json:"earned"`
	Percentage  float64 `json:"percentage"`
}
