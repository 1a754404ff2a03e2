package service

import (
	"strings"

	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// counterModulus is the fixed modulus for the distribution counter. It stays
// at 100 regardless of the slot array length (which is also at most 100 since
// percentages sum to 100), so the persisted counter keeps meaning even when
// allocations change between imports.
const counterModulus = 100

// AssignableUser is an owner or team member eligible to receive leads
type AssignableUser struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// DistributionAllocator walks a broker's weighted round-robin slot array.
// Each allocation contributes one slot per percentage point, grouped per
// user rather than interleaved, so consecutive draws can produce short runs
// of the same assignee. State is in-memory for one import run; the final
// counter is persisted once at the end of the run.
type DistributionAllocator struct {
	slots   []uuid.UUID
	counter int
	used    bool
}

// NewDistributionAllocator builds an allocator from the broker's active
// allocations and the persisted counter value.
func NewDistributionAllocator(allocations []models.LeadDistributionAllocation, counter int) *DistributionAllocator {
	slots := make([]uuid.UUID, 0, counterModulus)
	for _, alloc := range allocations {
		for i := 0; i < alloc.Percentage; i++ {
			slots = append(slots, alloc.UserID)
		}
	}
	return &DistributionAllocator{slots: slots, counter: counter % counterModulus}
}

// Next returns the next assignee in the rotation, or nil when no slots exist
func (a *DistributionAllocator) Next() *uuid.UUID {
	if len(a.slots) == 0 {
		return nil
	}
	userID := a.slots[a.counter%len(a.slots)]
	a.counter = (a.counter + 1) % counterModulus
	a.used = true
	return &userID
}

// Counter returns the current counter position
func (a *DistributionAllocator) Counter() int {
	return a.counter
}

// Used reports whether any assignment was drawn from the allocator
func (a *DistributionAllocator) Used() bool {
	return a.used
}

// AssigneeResolver resolves which user an imported lead is assigned to,
// from explicit broker email/name hints or from the distribution rotation.
type AssigneeResolver struct {
	users      []AssignableUser
	emailIndex map[string]uuid.UUID
	nameIndex  map[string]uuid.UUID
	allocator  *DistributionAllocator
}

// NewAssigneeResolver builds a resolver over the assignable users list.
// The owner must be first in the list so fuzzy matches prefer them. The
// allocator may be nil when distribution is disabled.
func NewAssigneeResolver(users []AssignableUser, allocator *DistributionAllocator) *AssigneeResolver {
	r := &AssigneeResolver{
		users:      users,
		emailIndex: make(map[string]uuid.UUID, len(users)),
		nameIndex:  make(map[string]uuid.UUID, len(users)),
		allocator:  allocator,
	}
	for _, u := range users {
		if email := strings.ToLower(strings.TrimSpace(u.Email)); email != "" {
			if _, ok := r.emailIndex[email]; !ok {
				r.emailIndex[email] = u.UserID
			}
		}
		if name := strings.ToLower(strings.TrimSpace(u.Name)); name != "" {
			if _, ok := r.nameIndex[name]; !ok {
				r.nameIndex[name] = u.UserID
			}
		}
	}
	return r
}

// Resolve picks the assignee for one row. Email hint takes priority over name
// hint; a hint that matches nothing leaves the lead unassigned rather than
// falling back to distribution, so an explicit-but-wrong hint is never
// silently overridden. Distribution applies only when no hint was supplied.
func (r *AssigneeResolver) Resolve(emailHint, nameHint string) *uuid.UUID {
	email := strings.ToLower(strings.TrimSpace(emailHint))
	name := strings.ToLower(strings.TrimSpace(nameHint))

	if email != "" {
		if userID, ok := r.emailIndex[email]; ok {
			return &userID
		}
	}

	if name != "" {
		if userID := r.findByName(name); userID != nil {
			return userID
		}
	}

	if email != "" || name != "" {
		return nil
	}

	if r.allocator != nil {
		return r.allocator.Next()
	}
	return nil
}

// findByName tries an exact normalized-name match, then a fuzzy scan where
// either name contains the other. First positional match wins.
func (r *AssigneeResolver) findByName(normalized string) *uuid.UUID {
	if userID, ok := r.nameIndex[normalized]; ok {
		return &userID
	}

	for _, u := range r.users {
		userName := strings.ToLower(strings.TrimSpace(u.Name))
		if userName == "" {
			continue
		}
		if strings.Contains(userName, normalized) || strings.Contains(normalized, userName) {
			userID := u.UserID
			return &userID
		}
	}
	return nil
}
