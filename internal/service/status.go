package service

import (
	"strings"

	"broker-crm-backend/internal/database/models"
)

// statusMapping is the resolved (status, sub_status) pair for one CSV phrase
type statusMapping struct {
	status    models.LeadStatus
	subStatus *models.LeadSubStatus
}

func sub(s models.LeadSubStatus) *models.LeadSubStatus { return &s }

// statusMap maps normalized CSV status phrases to the pipeline taxonomy.
// Keys are lowercase with single spaces; each phrase also appears with all
// whitespace stripped so "NoAnswer" style input still resolves.
var statusMap = map[string]statusMapping{
	// Main statuses
	"new":       {models.LeadStatusNew, nil},
	"no answer": {models.LeadStatusNoAnswer, nil},
	"noanswer":  {models.LeadStatusNoAnswer, nil},
	"call back": {models.LeadStatusCallBack, nil},
	"callback":  {models.LeadStatusCallBack, nil},
	"settled":   {models.LeadStatusSettled, nil},

	// Pending sub-statuses
	"waiting on banking": {models.LeadStatusPending, sub(models.SubStatusWaitingOnBanking)},
	"waitingonbanking":   {models.LeadStatusPending, sub(models.SubStatusWaitingOnBanking)},
	"indicative offer":   {models.LeadStatusPending, sub(models.SubStatusIndicativeOffer)},
	"indicativeoffer":    {models.LeadStatusPending, sub(models.SubStatusIndicativeOffer)},
	"docs out":           {models.LeadStatusPending, sub(models.SubStatusDocsOut)},
	"docsout":            {models.LeadStatusPending, sub(models.SubStatusDocsOut)},
	"submitted":          {models.LeadStatusPending, sub(models.SubStatusSubmitted)},
	"pending approval":   {models.LeadStatusPending, sub(models.SubStatusPendingApproval)},
	"pendingapproval":    {models.LeadStatusPending, sub(models.SubStatusPendingApproval)},
	"approved":           {models.LeadStatusPending, sub(models.SubStatusApproved)},
	"pending":            {models.LeadStatusPending, nil},

	// Bad lead sub-statuses
	"duplicate":             {models.LeadStatusBadLead, sub(models.SubStatusDuplicate)},
	"invalid number":        {models.LeadStatusBadLead, sub(models.SubStatusInvalidNumber)},
	"invalidnumber":         {models.LeadStatusBadLead, sub(models.SubStatusInvalidNumber)},
	"below minimum deposit": {models.LeadStatusBadLead, sub(models.SubStatusBelowMinimumDeposit)},
	"belowminimumdeposit":   {models.LeadStatusBadLead, sub(models.SubStatusBelowMinimumDeposit)},
	"ineligible":            {models.LeadStatusBadLead, sub(models.SubStatusIneligible)},
	"ineligable":            {models.LeadStatusBadLead, sub(models.SubStatusIneligible)}, // common misspelling
	"excessive dishonors":   {models.LeadStatusBadLead, sub(models.SubStatusExcessiveDishonors)},
	"excessivedishonors":    {models.LeadStatusBadLead, sub(models.SubStatusExcessiveDishonors)},
	"not interested":        {models.LeadStatusBadLead, sub(models.SubStatusNotInterested)},
	"notinterested":         {models.LeadStatusBadLead, sub(models.SubStatusNotInterested)},
	"bad lead":              {models.LeadStatusBadLead, nil},
	"badlead":               {models.LeadStatusBadLead, nil},
}

// MapStatus maps a free-text CSV status value to the pipeline status and
// sub-status. Unrecognized values fall back to (new, nil); this is silent and
// never an error.
func MapStatus(raw string) (models.LeadStatus, *models.LeadSubStatus) {
	if raw == "" {
		return models.LeadStatusNew, nil
	}

	// Normalize: lowercase, trim, collapse internal whitespace
	normalized := strings.Join(strings.Fields(strings.ToLower(raw)), " ")

	if m, ok := statusMap[normalized]; ok {
		return m.status, m.subStatus
	}

	// Retry with all whitespace stripped, handles "NoAnswer" style input
	noSpaces := strings.ReplaceAll(normalized, " ", "")
	if m, ok := statusMap[noSpaces]; ok {
		return m.status, m.subStatus
	}

	return models.LeadStatusNew, nil
}

// StatusMappingPreview shows how one CSV status value will be imported
type StatusMappingPreview struct {
	CsvValue   string                `json:"csv_value"`
	Status     models.LeadStatus     `json:"status"`
	SubStatus  *models.LeadSubStatus `json:"sub_status"`
	Recognized bool                  `json:"recognized"`
}

// PreviewStatusMappings resolves the distinct status values of a CSV so the
// importer UI can show the mapping before the run. Input order is preserved.
func PreviewStatusMappings(values []string) []StatusMappingPreview {
	seen := make(map[string]bool, len(values))
	previews := make([]StatusMappingPreview, 0, len(values))

	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true

		status, subStatus := MapStatus(v)
		normalized := strings.Join(strings.Fields(strings.ToLower(v)), " ")
		noSpaces := strings.ReplaceAll(normalized, " ", "")
		_, direct := statusMap[normalized]
		_, stripped := statusMap[noSpaces]

		previews = append(previews, StatusMappingPreview{
			CsvValue:   v,
			Status:     status,
			SubStatus:  subStatus,
			Recognized: direct || stripped,
		})
	}

	return previews
}
