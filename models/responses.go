package models

// ProductsResponse is the upstream envelope around product collections.
// Every collection endpoint (full listing, category listing, search) wraps
// its results in this shape together with the provider's own pagination
// bookkeeping. The gateway ignores the upstream offsets, since pagination is
// applied client-side, but the fields are kept so the envelope decodes
// losslessly.
type ProductsResponse struct {
	Products []Product `json:"products"`

	// Total is the size of the full upstream collection.
	Total int `json:"total"`

	// Skip and Limit echo the upstream's own pagination window.
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// UsersResponse is the upstream envelope around user collections.
type UsersResponse struct {
	Users []User `json:"users"`

	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}
