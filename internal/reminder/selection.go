package reminder

import (
	"github.com/google/uuid"

	"creditwatch/internal/domain"
)

// Selection is the set of invoice IDs chosen for a reminder. Membership is
// toggled independently per invoice.
type Selection map[uuid.UUID]struct{}

// NewSelection builds a selection from explicit IDs.
func NewSelection(ids ...uuid.UUID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// SelectUnpaid is the default selection on entering reminder mode: every
// invoice with outstanding > 0.
func SelectUnpaid(invoices []domain.Invoice) Selection {
	s := make(Selection)
	for _, inv := range invoices {
		if inv.Outstanding.IsPositive() {
			s[inv.ID] = struct{}{}
		}
	}
	return s
}

// Contains reports membership.
func (s Selection) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Count returns the number of selected invoices.
func (s Selection) Count() int {
	return len(s)
}

// Toggle flips membership for one invoice.
func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAll clears the selection when every unpaid invoice is already
// selected, otherwise selects all unpaid invoices.
func (s Selection) ToggleAll(invoices []domain.Invoice) {
	unpaid := SelectUnpaid(invoices)
	all := len(unpaid) > 0
	for id := range unpaid {
		if !s.Contains(id) {
			all = false
			break
		}
	}
	if all {
		for id := range unpaid {
			delete(s, id)
		}
		return
	}
	for id := range unpaid {
		s[id] = struct{}{}
	}
}
