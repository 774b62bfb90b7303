package api

import (
	"context"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult is the body of a successful POST /api/auth/login. The token
// accompanies the user and is attached to subsequent requests.
type LoginResult struct {
	domain.User
	Token string `json:"token,omitempty"`
}

// Client is the remote-access surface of the backend. All methods honor
// context cancellation; implementations add a request timeout on top.
//
// Non-2xx responses come back as *APIError with the server's message kept
// verbatim. Transport failures come back wrapping ErrUnavailable.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	Items(ctx context.Context, status string) ([]domain.Item, error)
	Item(ctx context.Context, id int64) (*domain.Item, error)
	CreateItem(ctx context.Context, item domain.NewItem, imagePath string) (string, error)

	ClaimsByItem(ctx context.Context, itemID int64) ([]domain.Claim, error)
	ClaimsByUser(ctx context.Context, userID int64) ([]domain.Claim, error)
	CreateClaim(ctx context.Context, claim domain.NewClaim, proofImagePath string) (string, error)
	ForwardClaim(ctx context.Context, claimID, userID int64) (string, error)
	ApproveClaim(ctx context.Context, claimID, userID int64) (string, error)
	RejectClaim(ctx context.Context, claimID, userID int64, reason string) (string, error)
	AdminReviewClaims(ctx context.Context) ([]domain.Claim, error)

	RequestVerification(ctx context.Context, claimID, userID int64) (string, error)
	SubmitVerification(ctx context.Context, code string, claimID int64) (string, error)

	// SetToken installs (or clears) the bearer token used on subsequent calls.
	SetToken(token string)
}
