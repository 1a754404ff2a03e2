package service

import (
	"strings"

	"broker-crm-backend/internal/repository"
)

// minPhoneDigits is the shortest digit string considered a usable phone
// identity; anything shorter is too ambiguous to dedupe on.
const minPhoneDigits = 10

// DuplicateDetector tracks the three identity sets of a broker's leads
// (external id, email, digits-only phone) and answers whether an incoming
// row duplicates one already seen. Accepted rows must be recorded so that
// duplicates within the same import batch are caught too, which is why
// import rows are processed sequentially.
type DuplicateDetector struct {
	externalIDs map[string]struct{}
	emails      map[string]struct{}
	phones      map[string]struct{}
}

// NewDuplicateDetector seeds a detector from the identity fields of the
// broker's existing leads.
func NewDuplicateDetector(existing []repository.LeadIdentity) *DuplicateDetector {
	d := &DuplicateDetector{
		externalIDs: make(map[string]struct{}, len(existing)),
		emails:      make(map[string]struct{}, len(existing)),
		phones:      make(map[string]struct{}, len(existing)),
	}
	for _, identity := range existing {
		d.Record(identity.ExternalID, identity.Email, identity.Phone)
	}
	return d
}

// IsDuplicate reports whether the given identity values match a known lead.
// Checked in priority order: external id, then email, then phone; the first
// hit wins.
func (d *DuplicateDetector) IsDuplicate(externalID, email, phone string) bool {
	if id := strings.ToLower(strings.TrimSpace(externalID)); id != "" {
		if _, ok := d.externalIDs[id]; ok {
			return true
		}
	}
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		if _, ok := d.emails[e]; ok {
			return true
		}
	}
	if p := NormalizePhone(phone); len(p) >= minPhoneDigits {
		if _, ok := d.phones[p]; ok {
			return true
		}
	}
	return false
}

// Record adds a lead's identity values to the detector
func (d *DuplicateDetector) Record(externalID, email, phone string) {
	if id := strings.ToLower(strings.TrimSpace(externalID)); id != "" {
		d.externalIDs[id] = struct{}{}
	}
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		d.emails[e] = struct{}{}
	}
	if p := NormalizePhone(phone); len(p) >= minPhoneDigits {
		d.phones[p] = struct{}{}
	}
}
