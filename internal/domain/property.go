package domain

import "time"

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
)

type PropertyStatus string

const (
	PropertyStatusVacant      PropertyStatus = "vacant"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

type Property struct {
	ID           string         `json:"id"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	ZipCode      string         `json:"zip_code"`
	PropertyType PropertyType   `json:"property_type"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    float64        `json:"bathrooms"`
	SquareFeet   int            `json:"square_feet"`
	MonthlyRent  float64        `json:"monthly_rent"`
	Status       PropertyStatus `json:"status"`
	ImageURL     string         `json:"image_url,omitempty"`
	Description  string         `json:"description,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// PropertyPatch carries the fields an update may change. Nil fields are
// left untouched on the stored record.
type PropertyPatch struct {
	Address      *string         `json:"address,omitempty"`
	City         *string         `json:"city,omitempty"`
	State        *string         `json:"state,omitempty"`
	ZipCode      *string         `json:"zip_code,omitempty"`
	PropertyType *PropertyType   `json:"property_type,omitempty"`
	Bedrooms     *int            `json:"bedrooms,omitempty"`
	Bathrooms    *float64        `json:"bathrooms,omitempty"`
	SquareFeet   *int            `json:"square_feet,omitempty"`
	MonthlyRent  *float64        `json:"monthly_rent,omitempty"`
	Status       *PropertyStatus `json:"status,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Description  *string         `json:"description,omitempty"`
}

// Apply merges the patch into p, leaving nil fields alone.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.ZipCode != nil {
		p.ZipCode = *patch.ZipCode
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.SquareFeet != nil {
		p.SquareFeet = *patch.SquareFeet
	}
	if patch.MonthlyRent != nil {
		p.MonthlyRent = *patch.MonthlyRent
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
}
