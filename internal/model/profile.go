package model

// Profile holds the single user profile stored alongside the menu cache.
type Profile struct {
	FirstName       string `json:"firstName" db:"first_name"`
	LastName        string `json:"lastName" db:"last_name"`
	Email           string `json:"email" db:"email"`
	Phone           string `json:"phone" db:"phone"`
	Avatar          string `json:"avatar" db:"avatar"`
	OrderStatuses   bool   `json:"orderStatuses" db:"order_statuses"`
	PasswordChanges bool   `json:"passwordChanges" db:"password_changes"`
	SpecialOffers   bool   `json:"specialOffers" db:"special_offers"`
	Newsletter      bool   `json:"newsletter" db:"newsletter"`
}
