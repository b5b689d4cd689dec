package domain

import "time"

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
	TenantStatusPending  TenantStatus = "pending"
)

// EmergencyContact is owned by the tenant record. It has no identity of
// its own and travels with the tenant.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Tenant struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Status           TenantStatus     `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type TenantPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	// EmergencyContact replaces the stored contact wholesale; there is no
	// deep merge of its fields.
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	Status           *TenantStatus     `json:"status,omitempty"`
}

func (patch TenantPatch) Apply(t *Tenant) {
	if patch.FirstName != nil {
		t.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		t.LastName = *patch.LastName
	}
	if patch.Email != nil {
		t.Email = *patch.Email
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
	}
	if patch.EmergencyContact != nil {
		t.EmergencyContact = *patch.EmergencyContact
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
}
