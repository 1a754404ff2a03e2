package models

// LeadStatus defines the pipeline status of a lead
type LeadStatus string

const (
	LeadStatusNew      LeadStatus = "new"
	LeadStatusNoAnswer LeadStatus = "no_answer"
	LeadStatusCallBack LeadStatus = "call_back"
	LeadStatusPending  LeadStatus = "pending"
	LeadStatusBadLead  LeadStatus = "bad_lead"
	LeadStatusSettled  LeadStatus = "settled"
)

// LeadSubStatus refines pending and bad_lead statuses
type LeadSubStatus string

const (
	// Pending sub-statuses
	SubStatusWaitingOnBanking LeadSubStatus = "waiting_on_banking"
	SubStatusIndicativeOffer  LeadSubStatus = "indicative_offer"
	SubStatusDocsOut          LeadSubStatus = "docs_out"
	SubStatusSubmitted        LeadSubStatus = "submitted"
	SubStatusPendingApproval  LeadSubStatus = "pending_approval"
	SubStatusApproved         LeadSubStatus = "approved"

	// Bad lead sub-statuses
	SubStatusDuplicate           LeadSubStatus = "duplicate"
	SubStatusInvalidNumber       LeadSubStatus = "invalid_number"
	SubStatusBelowMinimumDeposit LeadSubStatus = "below_minimum_deposit"
	SubStatusIneligible          LeadSubStatus = "ineligible"
	SubStatusExcessiveDishonors  LeadSubStatus = "excessive_dishonors"
	SubStatusNotInterested       LeadSubStatus = "not_interested"
)

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusNoAnswer, LeadStatusCallBack, LeadStatusPending, LeadStatusBadLead, LeadStatusSettled:
		return true
	}
	return false
}

// AllowsSubStatus reports whether this status carries a sub-status.
// Only pending and bad_lead leads have one; all other statuses must keep it null.
func (s LeadStatus) AllowsSubStatus() bool {
	return s == LeadStatusPending || s == LeadStatusBadLead
}

// IsValidFor checks that the sub-status belongs to the given status
func (ss LeadSubStatus) IsValidFor(status LeadStatus) bool {
	switch status {
	case LeadStatusPending:
		switch ss {
		case SubStatusWaitingOnBanking, SubStatusIndicativeOffer, SubStatusDocsOut,
			SubStatusSubmitted, SubStatusPendingApproval, SubStatusApproved:
			return true
		}
	case LeadStatusBadLead:
		switch ss {
		case SubStatusDuplicate, SubStatusInvalidNumber, SubStatusBelowMinimumDeposit,
			SubStatusIneligible, SubStatusExcessiveDishonors, SubStatusNotInterested:
			return true
		}
	}
	return false
}

// CallOutcome defines the result of a dialer call
type CallOutcome string

const (
	CallOutcomeAnswered  CallOutcome = "answered"
	CallOutcomeNoAnswer  CallOutcome = "no_answer"
	CallOutcomeVoicemail CallOutcome = "voicemail"
	CallOutcomeBusy      CallOutcome = "busy"
)

// IsValid checks if the CallOutcome is valid
func (o CallOutcome) IsValid() bool {
	switch o {
	case CallOutcomeAnswered, CallOutcomeNoAnswer, CallOutcomeVoicemail, CallOutcomeBusy:
		return true
	}
	return false
}
