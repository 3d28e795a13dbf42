// Package transport defines the catalog module's API response shapes.
package transport

// Account is one payment account (or priced plan) inside a group.
type Account struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
	Number string `json:"number"`
	Order  int    `json:"order"`
}

// GroupedEntry is one card on the landing page: a bank with its accounts or
// a service category with its plans. Accounts is always present, empty for
// coming-soon groups.
type GroupedEntry struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Logo       string    `json:"logo"`
	Accounts   []Account `json:"accounts"`
	ComingSoon bool      `json:"comingSoon"`
	Message    string    `json:"message,omitempty"`
	Order      int       `json:"order"`
}

// ListResponse wraps a grouped collection.
type ListResponse struct {
	Items []GroupedEntry `json:"items"`
	Total int            `json:"total"`
}

// InfoResponse bundles everything the landing page needs in one call.
type InfoResponse struct {
	Services       []GroupedEntry `json:"services"`
	PaymentMethods []GroupedEntry `json:"paymentMethods"`
}

// QRRequest carries the account number to encode.
type QRRequest struct {
	Number string `form:"number" validate:"required,max=64,alphanum"`
}
