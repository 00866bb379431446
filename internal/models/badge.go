package models

// Badge is a named achievement with a boolean earned state. IsEarned
// transitions false→true only; evaluation never reverts an earned badge.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	Color       string `json:"color"`
	IsEarned    bool   `json:"is_earned"`
}
