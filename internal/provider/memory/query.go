package memory

import (
	"sort"

	"rentdash-backend/internal/domain"
)

// Sorting covers a fixed set of fields per entity; an unrecognized
// SortBy leaves the collection in insertion order. Filters match on
// equality and unrecognized filter fields are ignored.

func orderedSort[T any](items []T, order domain.SortOrder, less func(a, b T) bool) {
	if order == domain.SortDesc {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func sortProperties(items []domain.Property, by string, order domain.SortOrder) {
	var less func(a, b domain.Property) bool
	switch by {
	case "address":
		less = func(a, b domain.Property) bool { return a.Address < b.Address }
	case "city":
		less = func(a, b domain.Property) bool { return a.City < b.City }
	case "bedrooms":
		less = func(a, b domain.Property) bool { return a.Bedrooms < b.Bedrooms }
	case "square_feet":
		less = func(a, b domain.Property) bool { return a.SquareFeet < b.SquareFeet }
	case "monthly_rent":
		less = func(a, b domain.Property) bool { return a.MonthlyRent < b.MonthlyRent }
	case "status":
		less = func(a, b domain.Property) bool { return a.Status < b.Status }
	case "created_at":
		less = func(a, b domain.Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	orderedSort(items, order, less)
}

func applyPropertyFilters(items []domain.Property, filters map[string]string) []domain.Property {
	if len(filters) == 0 {
		return items
	}
	return filterItems(items, func(p domain.Property) bool {
		for field, want := range filters {
			switch field {
			case "status":
				if string(p.Status) != want {
					return false
				}
			case "property_type":
				if string(p.PropertyType) != want {
					return false
				}
			case "city":
				if p.City != want {
					return false
				}
			}
		}
		return true
	})
}

func sortTenants(items []domain.Tenant, by string, order domain.SortOrder) {
	var less func(a, b domain.Tenant) bool
	switch by {
	case "first_name":
		less = func(a, b domain.Tenant) bool { return a.FirstName < b.FirstName }
	case "last_name":
		less = func(a, b domain.Tenant) bool { return a.LastName < b.LastName }
	case "email":
		less = func(a, b domain.Tenant) bool { return a.Email < b.Email }
	case "status":
		less = func(a, b domain.Tenant) bool { return a.Status < b.Status }
	case "created_at":
		less = func(a, b domain.Tenant) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	orderedSort(items, order, less)
}

func applyTenantFilters(items []domain.Tenant, filters map[string]string) []domain.Tenant {
	if len(filters) == 0 {
		return items
	}
	return filterItems(items, func(t domain.Tenant) bool {
		for field, want := range filters {
			switch field {
			case "status":
				if string(t.Status) != want {
					return false
				}
			case "email":
				if t.Email != want {
					return false
				}
			}
		}
		return true
	})
}

func sortLeases(items []domain.Lease, by string, order domain.SortOrder) {
	var less func(a, b domain.Lease) bool
	switch by {
	case "start_date":
		less = func(a, b domain.Lease) bool { return a.StartDate.Before(b.StartDate) }
	case "end_date":
		less = func(a, b domain.Lease) bool { return a.EndDate.Before(b.EndDate) }
	case "monthly_rent":
		less = func(a, b domain.Lease) bool { return a.MonthlyRent < b.MonthlyRent }
	case "status":
		less = func(a, b domain.Lease) bool { return a.Status < b.Status }
	case "created_at":
		less = func(a, b domain.Lease) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	orderedSort(items, order, less)
}

func applyLeaseFilters(items []domain.Lease, filters map[string]string) []domain.Lease {
	if len(filters) == 0 {
		return items
	}
	return filterItems(items, func(l domain.Lease) bool {
		for field, want := range filters {
			switch field {
			case "status":
				if string(l.Status) != want {
					return false
				}
			case "property_id":
				if l.PropertyID != want {
					return false
				}
			case "tenant_id":
				if l.TenantID != want {
					return false
				}
			}
		}
		return true
	})
}

func sortPayments(items []domain.Payment, by string, order domain.SortOrder) {
	var less func(a, b domain.Payment) bool
	switch by {
	case "amount":
		less = func(a, b domain.Payment) bool { return a.Amount < b.Amount }
	case "due_date":
		less = func(a, b domain.Payment) bool { return a.DueDate.Before(b.DueDate) }
	case "status":
		less = func(a, b domain.Payment) bool { return a.Status < b.Status }
	case "created_at":
		less = func(a, b domain.Payment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	orderedSort(items, order, less)
}

func applyPaymentFilters(items []domain.Payment, filters map[string]string) []domain.Payment {
	if len(filters) == 0 {
		return items
	}
	return filterItems(items, func(p domain.Payment) bool {
		for field, want := range filters {
			switch field {
			case "status":
				if string(p.Status) != want {
					return false
				}
			case "lease_id":
				if p.LeaseID != want {
					return false
				}
			case "tenant_id":
				if p.TenantID != want {
					return false
				}
			}
		}
		return true
	})
}

var priorityRank = map[domain.MaintenancePriority]int{
	domain.MaintenancePriorityLow:    0,
	domain.MaintenancePriorityMedium: 1,
	domain.MaintenancePriorityHigh:   2,
	domain.MaintenancePriorityUrgent: 3,
}

func sortMaintenanceRequests(items []domain.MaintenanceRequest, by string, order domain.SortOrder) {
	var less func(a, b domain.MaintenanceRequest) bool
	switch by {
	case "title":
		less = func(a, b domain.MaintenanceRequest) bool { return a.Title < b.Title }
	case "priority":
		less = func(a, b domain.MaintenanceRequest) bool { return priorityRank[a.Priority] < priorityRank[b.Priority] }
	case "status":
		less = func(a, b domain.MaintenanceRequest) bool { return a.Status < b.Status }
	case "created_at":
		less = func(a, b domain.MaintenanceRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	orderedSort(items, order, less)
}

func applyMaintenanceFilters(items []domain.MaintenanceRequest, filters map[string]string) []domain.MaintenanceRequest {
	if len(filters) == 0 {
		return items
	}
	return filterItems(items, func(m domain.MaintenanceRequest) bool {
		for field, want := range filters {
			switch field {
			case "status":
				if string(m.Status) != want {
					return false
				}
			case "priority":
				if string(m.Priority) != want {
					return false
				}
			case "category":
				if string(m.Category) != want {
					return false
				}
			case "property_id":
				if m.PropertyID != want {
					return false
				}
			}
		}
		return true
	})
}
