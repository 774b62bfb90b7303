package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/logging"
)

// fakeClient records arguments and returns canned results so the services can
// be exercised without a server. Calls counts how many requests went out,
// which the gate tests use to prove an action was refused locally.
type fakeClient struct {
	Calls int

	RegisterMsg string
	LoginRes    *api.LoginResult
	ItemsRes    []domain.Item
	ItemRes     *domain.Item
	ClaimsRes   []domain.Claim
	Msg         string
	Err         error

	Token        string
	LastRegister api.RegisterRequest
	LastNewItem  domain.NewItem
	LastNewClaim domain.NewClaim
	LastStatus   string
	LastClaimID  int64
	LastUserID   int64
	LastReason   string
	LastCode     string
}

func (f *fakeClient) Register(_ context.Context, req api.RegisterRequest) (string, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterMsg, f.Err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.LoginRes, nil
}

func (f *fakeClient) Items(_ context.Context, status string) ([]domain.Item, error) {
	f.Calls++
	f.LastStatus = status
	return f.ItemsRes, f.Err
}

func (f *fakeClient) Item(_ context.Context, id int64) (*domain.Item, error) {
	f.Calls++
	return f.ItemRes, f.Err
}

func (f *fakeClient) CreateItem(_ context.Context, item domain.NewItem, imagePath string) (string, error) {
	f.Calls++
	f.LastNewItem = item
	return f.Msg, f.Err
}

func (f *fakeClient) ClaimsByItem(_ context.Context, itemID int64) ([]domain.Claim, error) {
	f.Calls++
	return f.ClaimsRes, f.Err
}

func (f *fakeClient) ClaimsByUser(_ context.Context, userID int64) ([]domain.Claim, error) {
	f.Calls++
	f.LastUserID = userID
	return f.ClaimsRes, f.Err
}

func (f *fakeClient) CreateClaim(_ context.Context, claim domain.NewClaim, proofImagePath string) (string, error) {
	f.Calls++
	f.LastNewClaim = claim
	return f.Msg, f.Err
}

func (f *fakeClient) ForwardClaim(_ context.Context, claimID, userID int64) (string, error) {
	f.Calls++
	f.LastClaimID, f.LastUserID = claimID, userID
	return f.Msg, f.Err
}

func (f *fakeClient) ApproveClaim(_ context.Context, claimID, userID int64) (string, error) {
	f.Calls++
	f.LastClaimID, f.LastUserID = claimID, userID
	return f.Msg, f.Err
}

func (f *fakeClient) RejectClaim(_ context.Context, claimID, userID int64, reason string) (string, error) {
	f.Calls++
	f.LastClaimID, f.LastUserID, f.LastReason = claimID, userID, reason
	return f.Msg, f.Err
}

func (f *fakeClient) AdminReviewClaims(_ context.Context) ([]domain.Claim, error) {
	f.Calls++
	return f.ClaimsRes, f.Err
}

func (f *fakeClient) RequestVerification(_ context.Context, claimID, userID int64) (string, error) {
	f.Calls++
	f.LastClaimID, f.LastUserID = claimID, userID
	return f.Msg, f.Err
}

func (f *fakeClient) SubmitVerification(_ context.Context, code string, claimID int64) (string, error) {
	f.Calls++
	f.LastCode, f.LastClaimID = code, claimID
	return f.Msg, f.Err
}

func (f *fakeClient) SetToken(token string) {
	f.Token = token
}

var _ api.Client = (*fakeClient)(nil)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"), logging.NewText())
}

func loggedIn(t *testing.T, store *session.Store, u *domain.User) {
	t.Helper()
	if err := store.Set(context.Background(), &session.Session{User: u, Token: "t"}); err != nil {
		t.Fatalf("set session: %v", err)
	}
}
