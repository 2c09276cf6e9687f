package model

// Product is the record exchanged with the remote product service. Field
// names on the wire are the service's own (Spanish) names. ID is assigned by
// the server; 0 marks a local draft that has not been created remotely yet.
type Product struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"nombre" json:"nombre"`
	Price    float64 `db:"precio" json:"precio"`
	ImageURL *string `db:"imagen_url" json:"imagenUrl,omitempty"` // Nullable; absence must round-trip
}

// IsDraft reports whether the product has no server-assigned id yet.
func (p *Product) IsDraft() bool {
	return p.ID == 0
}

// Clone returns a deep copy so cached entries never alias caller memory.
func (p Product) Clone() Product {
	c := p
	if p.ImageURL != nil {
		u := *p.ImageURL
		c.ImageURL = &u
	}
	return c
}

// EqualIgnoringID compares all caller-settable fields. Used to check the
// server's create echo against the submitted draft.
func (p Product) EqualIgnoringID(o Product) bool {
	if p.Name != o.Name || p.Price != o.Price {
		return false
	}
	if (p.ImageURL == nil) != (o.ImageURL == nil) {
		return false
	}
	if p.ImageURL != nil && *p.ImageURL != *o.ImageURL {
		return false
	}
	return true
}
