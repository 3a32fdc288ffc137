package business

import "time"

// Business represents a tenant: an isolated data scope owned by exactly one
// owner account and operated by zero or more managers. Attributes beyond the
// identifying fields are opaque to the resolution layer.
type Business struct {
	ID        string         `bson:"_id" json:"id"`
	OwnerID   string         `bson:"owner_id" json:"owner_id"`
	Name      string         `bson:"name" json:"name"`
	Type      string         `bson:"type,omitempty" json:"type,omitempty"`
	Address   string         `bson:"address,omitempty" json:"address,omitempty"`
	Phone     string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Attrs     map[string]any `bson:"attrs,omitempty" json:"attrs,omitempty"`
	CreatedAt time.Time      `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time      `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
