package domain

import "errors"

// Gate errors. Each names the rule that refused the action. The client
// surfaces these directly; the server maps them to HTTP statuses.
var (
	ErrNotAuthenticated = errors.New("you must be logged in to do that")
	ErrOwnItem          = errors.New("you cannot claim an item you reported")
	ErrItemIsLost       = errors.New("claims can only be made on items reported as found")
	ErrItemClaimed      = errors.New("this item has already been claimed")
	ErrNotReporter      = errors.New("only the item's reporter can forward this claim")
	ErrNotAdmin         = errors.New("admin privileges required")
	ErrClaimNotPending  = errors.New("only pending claims can be forwarded to admin")
	ErrClaimNotForwarded = errors.New("this claim is not awaiting admin decision")
)

// CanSubmitClaim decides whether u may submit a claim against item.
// The actor must be authenticated and must not be the item's reporter;
// the item must be a found item that is not already claimed.
func CanSubmitClaim(u *User, item *Item) error {
	if u == nil {
		return ErrNotAuthenticated
	}
	if item.ReportedBy(u.ID) {
		return ErrOwnItem
	}
	if item.IsLost {
		return ErrItemIsLost
	}
	if item.Claimed {
		return ErrItemClaimed
	}
	return nil
}

// CanForward decides whether u may forward claim on item to an admin.
// Only the item's reporter may forward, and only while the claim is PENDING.
func CanForward(u *User, item *Item, claim *Claim) error {
	if u == nil {
		return ErrNotAuthenticated
	}
	if !item.ReportedBy(u.ID) {
		return ErrNotReporter
	}
	if claim.Status != StatusPending {
		return ErrClaimNotPending
	}
	return nil
}

// CanApprove decides whether u may approve claim.
func CanApprove(u *User, claim *Claim) error {
	return canAdjudicate(u, claim)
}

// CanReject decides whether u may reject claim.
func CanReject(u *User, claim *Claim) error {
	return canAdjudicate(u, claim)
}

func canAdjudicate(u *User, claim *Claim) error {
	if u == nil {
		return ErrNotAuthenticated
	}
	if !u.IsAdmin() {
		return ErrNotAdmin
	}
	if claim.Status != StatusForwarded {
		return ErrClaimNotForwarded
	}
	return nil
}
