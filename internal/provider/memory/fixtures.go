package memory

import (
	"time"

	"rentdash-backend/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

// seed loads the demo dataset: every lease resolves to a seeded property
// and tenant, every payment resolves to a seeded lease and tenant.
func (p *Provider) seed() {
	p.properties = []domain.Property{
		{
			ID:           "1",
			Address:      "123 Oak Street",
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      "94102",
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			SquareFeet:   1200,
			MonthlyRent:  3500,
			Status:       domain.PropertyStatusOccupied,
			Description:  "Modern apartment in downtown SF",
			CreatedAt:    day(2024, time.January, 15),
			UpdatedAt:    day(2024, time.January, 15),
		},
		{
			ID:           "2",
			Address:      "456 Maple Avenue",
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      "94110",
			PropertyType: domain.PropertyTypeHouse,
			Bedrooms:     3,
			Bathrooms:    2.5,
			SquareFeet:   1800,
			MonthlyRent:  4500,
			Status:       domain.PropertyStatusOccupied,
			Description:  "Beautiful family home with backyard",
			CreatedAt:    day(2024, time.February, 1),
			UpdatedAt:    day(2024, time.February, 1),
		},
		{
			ID:           "3",
			Address:      "789 Pine Court",
			City:         "Oakland",
			State:        "CA",
			ZipCode:      "94612",
			PropertyType: domain.PropertyTypeCondo,
			Bedrooms:     1,
			Bathrooms:    1,
			SquareFeet:   800,
			MonthlyRent:  2200,
			Status:       domain.PropertyStatusVacant,
			Description:  "Cozy condo near transit",
			CreatedAt:    day(2024, time.March, 10),
			UpdatedAt:    day(2024, time.March, 10),
		},
		{
			ID:           "4",
			Address:      "321 Elm Boulevard",
			City:         "Berkeley",
			State:        "CA",
			ZipCode:      "94704",
			PropertyType: domain.PropertyTypeTownhouse,
			Bedrooms:     3,
			Bathrooms:    2,
			SquareFeet:   1500,
			MonthlyRent:  3800,
			Status:       domain.PropertyStatusOccupied,
			Description:  "Spacious townhouse near UC Berkeley",
			CreatedAt:    day(2024, time.February, 20),
			UpdatedAt:    day(2024, time.February, 20),
		},
	}

	p.tenants = []domain.Tenant{
		{
			ID:        "1",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@email.com",
			Phone:     "555-0101",
			EmergencyContact: domain.EmergencyContact{
				Name:         "Jane Doe",
				Phone:        "555-0102",
				Relationship: "Spouse",
			},
			Status:    domain.TenantStatusActive,
			CreatedAt: day(2024, time.January, 20),
			UpdatedAt: day(2024, time.January, 20),
		},
		{
			ID:        "2",
			FirstName: "Alice",
			LastName:  "Johnson",
			Email:     "alice.j@email.com",
			Phone:     "555-0201",
			EmergencyContact: domain.EmergencyContact{
				Name:         "Bob Johnson",
				Phone:        "555-0202",
				Relationship: "Father",
			},
			Status:    domain.TenantStatusActive,
			CreatedAt: day(2024, time.February, 5),
			UpdatedAt: day(2024, time.February, 5),
		},
		{
			ID:        "3",
			FirstName: "Michael",
			LastName:  "Smith",
			Email:     "michael.smith@email.com",
			Phone:     "555-0301",
			EmergencyContact: domain.EmergencyContact{
				Name:         "Sarah Smith",
				Phone:        "555-0302",
				Relationship: "Sister",
			},
			Status:    domain.TenantStatusActive,
			CreatedAt: day(2024, time.February, 25),
			UpdatedAt: day(2024, time.February, 25),
		},
	}

	p.leases = []domain.Lease{
		{
			ID:              "1",
			PropertyID:      "1",
			TenantID:        "1",
			StartDate:       day(2024, time.February, 1),
			EndDate:         day(2025, time.January, 31),
			MonthlyRent:     3500,
			SecurityDeposit: 3500,
			Status:          domain.LeaseStatusActive,
			Terms:           "12-month lease, utilities not included",
			CreatedAt:       day(2024, time.January, 20),
			UpdatedAt:       day(2024, time.January, 20),
		},
		{
			ID:              "2",
			PropertyID:      "2",
			TenantID:        "2",
			StartDate:       day(2024, time.March, 1),
			EndDate:         day(2025, time.February, 28),
			MonthlyRent:     4500,
			SecurityDeposit: 4500,
			Status:          domain.LeaseStatusActive,
			Terms:           "12-month lease, tenant responsible for utilities",
			CreatedAt:       day(2024, time.February, 5),
			UpdatedAt:       day(2024, time.February, 5),
		},
		{
			ID:              "3",
			PropertyID:      "4",
			TenantID:        "3",
			StartDate:       day(2024, time.March, 15),
			EndDate:         day(2025, time.March, 14),
			MonthlyRent:     3800,
			SecurityDeposit: 3800,
			Status:          domain.LeaseStatusActive,
			Terms:           "12-month lease",
			CreatedAt:       day(2024, time.February, 25),
			UpdatedAt:       day(2024, time.February, 25),
		},
	}

	p.payments = []domain.Payment{
		{
			ID:            "1",
			LeaseID:       "1",
			TenantID:      "1",
			Amount:        3500,
			DueDate:       day(2024, time.November, 1),
			PaidDate:      timePtr(day(2024, time.October, 28)),
			Status:        domain.PaymentStatusPaid,
			PaymentMethod: domain.PaymentMethodBankTransfer,
			CreatedAt:     day(2024, time.October, 1),
			UpdatedAt:     day(2024, time.October, 28),
		},
		{
			ID:        "2",
			LeaseID:   "1",
			TenantID:  "1",
			Amount:    3500,
			DueDate:   day(2024, time.December, 1),
			Status:    domain.PaymentStatusPending,
			CreatedAt: day(2024, time.November, 1),
			UpdatedAt: day(2024, time.November, 1),
		},
		{
			ID:            "3",
			LeaseID:       "2",
			TenantID:      "2",
			Amount:        4500,
			DueDate:       day(2024, time.November, 1),
			PaidDate:      timePtr(day(2024, time.November, 1)),
			Status:        domain.PaymentStatusPaid,
			PaymentMethod: domain.PaymentMethodCheck,
			CreatedAt:     day(2024, time.October, 1),
			UpdatedAt:     day(2024, time.November, 1),
		},
		{
			ID:        "4",
			LeaseID:   "2",
			TenantID:  "2",
			Amount:    4500,
			DueDate:   day(2024, time.December, 1),
			Status:    domain.PaymentStatusPending,
			CreatedAt: day(2024, time.November, 1),
			UpdatedAt: day(2024, time.November, 1),
		},
		{
			ID:        "5",
			LeaseID:   "3",
			TenantID:  "3",
			Amount:    3800,
			DueDate:   day(2024, time.October, 15),
			Status:    domain.PaymentStatusOverdue,
			CreatedAt: day(2024, time.September, 15),
			UpdatedAt: day(2024, time.September, 15),
		},
		{
			ID:        "6",
			LeaseID:   "3",
			TenantID:  "3",
			Amount:    3800,
			DueDate:   day(2024, time.November, 15),
			Status:    domain.PaymentStatusPending,
			CreatedAt: day(2024, time.October, 15),
			UpdatedAt: day(2024, time.October, 15),
		},
	}

	p.maintenance = []domain.MaintenanceRequest{
		{
			ID:            "1",
			PropertyID:    "1",
			TenantID:      "1",
			Title:         "Leaking faucet in kitchen",
			Description:   "The kitchen faucet has been dripping constantly",
			Priority:      domain.MaintenancePriorityMedium,
			Status:        domain.MaintenanceStatusInProgress,
			Category:      domain.MaintenanceCategoryPlumbing,
			EstimatedCost: floatPtr(150),
			CreatedAt:     day(2024, time.October, 15),
			UpdatedAt:     day(2024, time.October, 16),
		},
		{
			ID:            "2",
			PropertyID:    "2",
			TenantID:      "2",
			Title:         "HVAC not heating properly",
			Description:   "Heater is not reaching set temperature",
			Priority:      domain.MaintenancePriorityHigh,
			Status:        domain.MaintenanceStatusOpen,
			Category:      domain.MaintenanceCategoryHVAC,
			EstimatedCost: floatPtr(350),
			CreatedAt:     day(2024, time.November, 5),
			UpdatedAt:     day(2024, time.November, 5),
		},
		{
			ID:          "3",
			PropertyID:  "4",
			TenantID:    "3",
			Title:       "Broken dishwasher",
			Description: "Dishwasher stopped working mid-cycle",
			Priority:    domain.MaintenancePriorityLow,
			Status:      domain.MaintenanceStatusOpen,
			Category:    domain.MaintenanceCategoryAppliance,
			CreatedAt:   day(2024, time.November, 8),
			UpdatedAt:   day(2024, time.November, 8),
		},
	}
}
