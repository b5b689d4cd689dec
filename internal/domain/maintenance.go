package domain

import "time"

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityUrgent MaintenancePriority = "urgent"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

type MaintenanceCategory string

const (
	MaintenanceCategoryPlumbing   MaintenanceCategory = "plumbing"
	MaintenanceCategoryElectrical MaintenanceCategory = "electrical"
	MaintenanceCategoryHVAC       MaintenanceCategory = "hvac"
	MaintenanceCategoryAppliance  MaintenanceCategory = "appliance"
	MaintenanceCategoryStructural MaintenanceCategory = "structural"
	MaintenanceCategoryOther      MaintenanceCategory = "other"
)

type MaintenanceRequest struct {
	ID            string              `json:"id"`
	PropertyID    string              `json:"property_id"`
	TenantID      string              `json:"tenant_id,omitempty"` // empty when reported by the landlord
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	Category      MaintenanceCategory `json:"category"`
	EstimatedCost *float64            `json:"estimated_cost,omitempty"`
	ActualCost    *float64            `json:"actual_cost,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
}

type MaintenanceRequestPatch struct {
	PropertyID    *string              `json:"property_id,omitempty"`
	TenantID      *string              `json:"tenant_id,omitempty"`
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Priority      *MaintenancePriority `json:"priority,omitempty"`
	Status        *MaintenanceStatus   `json:"status,omitempty"`
	Category      *MaintenanceCategory `json:"category,omitempty"`
	EstimatedCost *float64             `json:"estimated_cost,omitempty"`
	ActualCost    *float64             `json:"actual_cost,omitempty"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}

func (patch MaintenanceRequestPatch) Apply(m *MaintenanceRequest) {
	if patch.PropertyID != nil {
		m.PropertyID = *patch.PropertyID
	}
	if patch.TenantID != nil {
		m.TenantID = *patch.TenantID
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Priority != nil {
		m.Priority = *patch.Priority
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.EstimatedCost != nil {
		m.EstimatedCost = patch.EstimatedCost
	}
	if patch.ActualCost != nil {
		m.ActualCost = patch.ActualCost
	}
	if patch.CompletedAt != nil {
		m.CompletedAt = patch.CompletedAt
	}
}
