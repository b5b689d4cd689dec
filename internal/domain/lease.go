package domain

import "time"

type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
	LeaseStatusPending    LeaseStatus = "pending"
)

// Lease references its property and tenant by id only. The data layer
// does not enforce that those ids resolve.
type Lease struct {
	ID              string      `json:"id"`
	PropertyID      string      `json:"property_id"`
	TenantID        string      `json:"tenant_id"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         time.Time   `json:"end_date"`
	MonthlyRent     float64     `json:"monthly_rent"`
	SecurityDeposit float64     `json:"security_deposit"`
	Status          LeaseStatus `json:"status"`
	Terms           string      `json:"terms,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type LeasePatch struct {
	PropertyID      *string      `json:"property_id,omitempty"`
	TenantID        *string      `json:"tenant_id,omitempty"`
	StartDate       *time.Time   `json:"start_date,omitempty"`
	EndDate         *time.Time   `json:"end_date,omitempty"`
	MonthlyRent     *float64     `json:"monthly_rent,omitempty"`
	SecurityDeposit *float64     `json:"security_deposit,omitempty"`
	Status          *LeaseStatus `json:"status,omitempty"`
	Terms           *string      `json:"terms,omitempty"`
}

func (patch LeasePatch) Apply(l *Lease) {
	if patch.PropertyID != nil {
		l.PropertyID = *patch.PropertyID
	}
	if patch.TenantID != nil {
		l.TenantID = *patch.TenantID
	}
	if patch.StartDate != nil {
		l.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		l.EndDate = *patch.EndDate
	}
	if patch.MonthlyRent != nil {
		l.MonthlyRent = *patch.MonthlyRent
	}
	if patch.SecurityDeposit != nil {
		l.SecurityDeposit = *patch.SecurityDeposit
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Terms != nil {
		l.Terms = *patch.Terms
	}
}
