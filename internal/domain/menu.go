package domain

// MenuBusiness is the public-facing subset of a business shown on its
// rendered menu page.
type MenuBusiness struct {
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	LogoURL       *string      `json:"logo_url"`
	CoverImageURL *string      `json:"cover_image_url"`
	Description   *string      `json:"description"`
	BusinessType  BusinessType `json:"business_type"`
	ContactEmail  *string      `json:"contact_email"`
	ContactPhone  *string      `json:"contact_phone"`
	Address       *string      `json:"address"`
	WebsiteURL    *string      `json:"website_url"`
	PrimaryColor  *string      `json:"primary_color"`
	Currency      string       `json:"currency"`
}

// MenuCategory is a category together with its available items,
// both ordered by sort_order.
type MenuCategory struct {
	Category
	Items []Item `json:"items"`
}

// Menu is the full public menu for a business slug
type Menu struct {
	Business   MenuBusiness   `json:"business"`
	Categories []MenuCategory `json:"categories"`
}
