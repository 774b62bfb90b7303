package verifications

import "time"

// Verification is a one-time ownership check tied to a claim. Verifying never
// changes the claim's status; it only records that the code matched.
type Verification struct {
	ID         int64      `json:"id"`
	ClaimID    int64      `json:"claimId"`
	UserID     int64      `json:"userId"`
	Code       string     `json:"code"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
}
