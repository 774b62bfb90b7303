package domain

import "time"

// ClaimStatus is the lifecycle state of a claim.
type ClaimStatus string

const (
	// StatusPending: claim submitted, awaiting triage by the item's reporter.
	StatusPending ClaimStatus = "PENDING"
	// StatusForwarded: the reporter forwarded the claim for admin adjudication.
	StatusForwarded ClaimStatus = "FORWARDED_TO_ADMIN"
	// StatusApproved: an admin approved the claim. Terminal.
	StatusApproved ClaimStatus = "APPROVED"
	// StatusRejected: an admin rejected the claim. Terminal.
	StatusRejected ClaimStatus = "REJECTED"
)

// Valid reports whether s is one of the four known states.
func (s ClaimStatus) Valid() bool {
	switch s {
	case StatusPending, StatusForwarded, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition exists from s.
func (s ClaimStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Active reports whether the claim still competes for the item.
func (s ClaimStatus) Active() bool {
	return s == StatusPending || s == StatusForwarded
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another. Every claim must pass through FORWARDED_TO_ADMIN:
// there is no direct path from PENDING to a terminal state. The item's
// reporter triages, an administrator adjudicates.
func CanTransition(from, to ClaimStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusForwarded
	case StatusForwarded:
		return to == StatusApproved || to == StatusRejected
	}
	return false
}

// Claim is a user's assertion of ownership over a found item.
type Claim struct {
	ID              int64       `json:"id"`
	ItemID          int64       `json:"itemId"`
	UserID          int64       `json:"userId"`
	Username        string      `json:"username,omitempty"`
	Description     string      `json:"description"`
	ProofImagePath  string      `json:"proofImagePath,omitempty"`
	ClaimDate       time.Time   `json:"claimDate"`
	Status          ClaimStatus `json:"status"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
}

// NewClaim is the JSON part of the multipart POST /api/claims request.
type NewClaim struct {
	ItemID      int64  `json:"itemId"`
	UserID      int64  `json:"userId"`
	Description string `json:"description"`
}
