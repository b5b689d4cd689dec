package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusLate    PaymentStatus = "late"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
)

type Payment struct {
	ID            string        `json:"id"`
	LeaseID       string        `json:"lease_id"`
	TenantID      string        `json:"tenant_id"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type PaymentPatch struct {
	LeaseID       *string        `json:"lease_id,omitempty"`
	TenantID      *string        `json:"tenant_id,omitempty"`
	Amount        *float64       `json:"amount,omitempty"`
	DueDate       *time.Time     `json:"due_date,omitempty"`
	PaidDate      *time.Time     `json:"paid_date,omitempty"`
	Status        *PaymentStatus `json:"status,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

func (patch PaymentPatch) Apply(p *Payment) {
	if patch.LeaseID != nil {
		p.LeaseID = *patch.LeaseID
	}
	if patch.TenantID != nil {
		p.TenantID = *patch.TenantID
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	if patch.PaidDate != nil {
		p.PaidDate = patch.PaidDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.PaymentMethod != nil {
		p.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
}
