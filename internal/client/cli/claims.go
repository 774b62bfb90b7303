package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

var errClaimNotListed = errors.New("claim not found")

func claimLine(claim *domain.Claim) string {
	who := claim.Username
	if who == "" {
		who = fmt.Sprintf("user #%d", claim.UserID)
	}
	line := fmt.Sprintf("#%d  item #%d  by %s  [%s]", claim.ID, claim.ItemID, who, claim.Status)
	if claim.Status == domain.StatusRejected && claim.RejectionReason != "" {
		line += "  reason: " + claim.RejectionReason
	}
	return line
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		printlnFn(what + " id must be a number.")
		return 0, err
	}
	return id, nil
}

// Claim files a claim on an item: it loads the item, runs the local gate via
// the service, then collects the proof description and optional image.
func (a *App) Claim(ctx context.Context, itemID string) error {
	id, err := parseID(itemID, "Item")
	if err != nil {
		return err
	}

	item, err := a.items.Get(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	// Run the gate before asking the user to type out their proof.
	if err := domain.CanSubmitClaim(a.store.User(), item); err != nil {
		printlnFn(err.Error())
		return err
	}

	description, err := getMultiline(a.reader, "Describe why this item is yours:", os.Stdout)
	if err != nil {
		return err
	}
	proofPath, err := getSimpleText(a.reader, "Path to a proof image (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.claims.Submit(ctx, item, description, proofPath)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// MyClaims lists the claims the logged-in user has filed.
func (a *App) MyClaims(ctx context.Context) error {
	claims, err := a.claims.Mine(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(claims) == 0 {
		printlnFn("You have not filed any claims.")
		return nil
	}
	for i := range claims {
		printlnFn(claimLine(&claims[i]))
	}
	return nil
}

// Forward escalates a pending claim on one of the caller's items to the
// admins. The claim is located through the item it was filed against.
func (a *App) Forward(ctx context.Context, claimID string) error {
	cid, err := parseID(claimID, "Claim")
	if err != nil {
		return err
	}

	itemIDText, err := getSimpleText(a.reader, "Enter the id of your item the claim was filed on", os.Stdout)
	if err != nil {
		return err
	}
	iid, err := parseID(itemIDText, "Item")
	if err != nil {
		return err
	}

	item, err := a.items.Get(ctx, iid)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	claims, err := a.claims.ForItem(ctx, iid)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	claim := findClaim(claims, cid)
	if claim == nil {
		printlnFn(fmt.Sprintf("No claim #%d on item #%d.", cid, iid))
		return errClaimNotListed
	}

	msg, err := a.claims.Forward(ctx, item, claim)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// Review lists the claims waiting for an admin decision.
func (a *App) Review(ctx context.Context) error {
	claims, err := a.claims.AdminReview(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(claims) == 0 {
		printlnFn("No claims are waiting for review.")
		return nil
	}
	for i := range claims {
		printlnFn(claimLine(&claims[i]))
	}
	return nil
}

// Approve grants a forwarded claim. The claim must be on the review list.
func (a *App) Approve(ctx context.Context, claimID string) error {
	claim, err := a.reviewedClaim(ctx, claimID)
	if err != nil {
		return err
	}
	msg, err := a.claims.Approve(ctx, claim)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// Reject declines a forwarded claim, asking for an optional reason.
func (a *App) Reject(ctx context.Context, claimID string) error {
	claim, err := a.reviewedClaim(ctx, claimID)
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason for rejection (leave empty for default)", os.Stdout)
	if err != nil {
		return err
	}
	msg, err := a.claims.Reject(ctx, claim, reason)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// Verify runs the ownership verification flow for a claim: request a one-time
// code, then check the code the user received. The claim's status does not
// change either way.
func (a *App) Verify(ctx context.Context, claimID string) error {
	cid, err := parseID(claimID, "Claim")
	if err != nil {
		return err
	}

	msg, err := a.claims.RequestVerification(ctx, cid)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)

	code, err := getSimpleText(a.reader, "Enter the verification code", os.Stdout)
	if err != nil {
		return err
	}
	msg, err = a.claims.SubmitVerification(ctx, code, cid)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// reviewedClaim locates a claim on the admin review list.
func (a *App) reviewedClaim(ctx context.Context, claimID string) (*domain.Claim, error) {
	cid, err := parseID(claimID, "Claim")
	if err != nil {
		return nil, err
	}
	claims, err := a.claims.AdminReview(ctx)
	if err != nil {
		printlnFn(err.Error())
		return nil, err
	}
	claim := findClaim(claims, cid)
	if claim == nil {
		printlnFn(fmt.Sprintf("Claim #%d is not awaiting review.", cid))
		return nil, errClaimNotListed
	}
	return claim, nil
}

func findClaim(claims []domain.Claim, id int64) *domain.Claim {
	for i := range claims {
		if claims[i].ID == id {
			return &claims[i]
		}
	}
	return nil
}
