package service_test

import (
	"testing"

	"broker-crm-backend/internal/database/models"
	"broker-crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus_MainStatuses(t *testing.T) {
	tests := []struct {
		raw    string
		status models.LeadStatus
	}{
		{"new", models.LeadStatusNew},
		{"No Answer", models.LeadStatusNoAnswer},
		{"NoAnswer", models.LeadStatusNoAnswer},
		{"call back", models.LeadStatusCallBack},
		{"CallBack", models.LeadStatusCallBack},
		{"Settled", models.LeadStatusSettled},
		{"pending", models.LeadStatusPending},
		{"bad lead", models.LeadStatusBadLead},
		{"BadLead", models.LeadStatusBadLead},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, subStatus := service.MapStatus(tt.raw)
			assert.Equal(t, tt.status, status)
			assert.Nil(t, subStatus)
		})
	}
}

func TestMapStatus_SubStatuses(t *testing.T) {
	tests := []struct {
		raw       string
		status    models.LeadStatus
		subStatus models.LeadSubStatus
	}{
		{"Waiting on Banking", models.LeadStatusPending, models.SubStatusWaitingOnBanking},
		{"indicative offer", models.LeadStatusPending, models.SubStatusIndicativeOffer},
		{"Docs Out", models.LeadStatusPending, models.SubStatusDocsOut},
		{"submitted", models.LeadStatusPending, models.SubStatusSubmitted},
		{"Pending Approval", models.LeadStatusPending, models.SubStatusPendingApproval},
		{"approved", models.LeadStatusPending, models.SubStatusApproved},
		{"duplicate", models.LeadStatusBadLead, models.SubStatusDuplicate},
		{"Invalid Number", models.LeadStatusBadLead, models.SubStatusInvalidNumber},
		{"below minimum deposit", models.LeadStatusBadLead, models.SubStatusBelowMinimumDeposit},
		{"ineligible", models.LeadStatusBadLead, models.SubStatusIneligible},
		{"excessive dishonors", models.LeadStatusBadLead, models.SubStatusExcessiveDishonors},
		{"Not Interested", models.LeadStatusBadLead, models.SubStatusNotInterested},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, subStatus := service.MapStatus(tt.raw)
			assert.Equal(t, tt.status, status)
			require.NotNil(t, subStatus)
			assert.Equal(t, tt.subStatus, *subStatus)
		})
	}
}

func TestMapStatus_IneligableMisspelling(t *testing.T) {
	// CSV exports in the wild carry this misspelling
	status, subStatus := service.MapStatus("Ineligable")
	assert.Equal(t, models.LeadStatusBadLead, status)
	require.NotNil(t, subStatus)
	assert.Equal(t, models.SubStatusIneligible, *subStatus)
}

func TestMapStatus_WhitespaceNormalization(t *testing.T) {
	status, subStatus := service.MapStatus("  No    Answer  ")
	assert.Equal(t, models.LeadStatusNoAnswer, status)
	assert.Nil(t, subStatus)

	status, subStatus = service.MapStatus("\tWaiting  on   Banking ")
	assert.Equal(t, models.LeadStatusPending, status)
	require.NotNil(t, subStatus)
	assert.Equal(t, models.SubStatusWaitingOnBanking, *subStatus)
}

func TestMapStatus_UnrecognizedDefaultsToNew(t *testing.T) {
	for _, raw := range []string{"", "???", "hot lead", "converted"} {
		status, subStatus := service.MapStatus(raw)
		assert.Equal(t, models.LeadStatusNew, status, "input %q", raw)
		assert.Nil(t, subStatus)
	}
}

func TestPreviewStatusMappings(t *testing.T) {
	previews := service.PreviewStatusMappings([]string{"New", "NoAnswer", "hot lead", "New", ""})

	require.Len(t, previews, 3)

	assert.Equal(t, "New", previews[0].CsvValue)
	assert.Equal(t, models.LeadStatusNew, previews[0].Status)
	assert.True(t, previews[0].Recognized)

	assert.Equal(t, "NoAnswer", previews[1].CsvValue)
	assert.Equal(t, models.LeadStatusNoAnswer, previews[1].Status)
	assert.True(t, previews[1].Recognized)

	// Unrecognized still previews the fallback mapping
	assert.Equal(t, "hot lead", previews[2].CsvValue)
	assert.Equal(t, models.LeadStatusNew, previews[2].Status)
	assert.False(t, previews[2].Recognized)
}
