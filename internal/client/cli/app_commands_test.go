package cli

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/services"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// fakeAPI returns canned results and records what was sent.
type fakeAPI struct {
	loginRes  *api.LoginResult
	itemRes   *domain.Item
	itemsRes  []domain.Item
	claimsRes []domain.Claim
	msg       string
	err       error

	token     string
	newClaim  domain.NewClaim
	claimID   int64
	userID    int64
	reason    string
	proofPath string
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (string, error) {
	return f.msg, f.err
}
func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.loginRes, nil
}
func (f *fakeAPI) Items(_ context.Context, status string) ([]domain.Item, error) {
	return f.itemsRes, f.err
}
func (f *fakeAPI) Item(_ context.Context, id int64) (*domain.Item, error) {
	return f.itemRes, f.err
}
func (f *fakeAPI) CreateItem(_ context.Context, item domain.NewItem, imagePath string) (string, error) {
	return f.msg, f.err
}
func (f *fakeAPI) ClaimsByItem(_ context.Context, itemID int64) ([]domain.Claim, error) {
	return f.claimsRes, f.err
}
func (f *fakeAPI) ClaimsByUser(_ context.Context, userID int64) ([]domain.Claim, error) {
	f.userID = userID
	return f.claimsRes, f.err
}
func (f *fakeAPI) CreateClaim(_ context.Context, claim domain.NewClaim, proofImagePath string) (string, error) {
	f.newClaim = claim
	f.proofPath = proofImagePath
	return f.msg, f.err
}
func (f *fakeAPI) ForwardClaim(_ context.Context, claimID, userID int64) (string, error) {
	f.claimID, f.userID = claimID, userID
	return f.msg, f.err
}
func (f *fakeAPI) ApproveClaim(_ context.Context, claimID, userID int64) (string, error) {
	f.claimID, f.userID = claimID, userID
	return f.msg, f.err
}
func (f *fakeAPI) RejectClaim(_ context.Context, claimID, userID int64, reason string) (string, error) {
	f.claimID, f.userID, f.reason = claimID, userID, reason
	return f.msg, f.err
}
func (f *fakeAPI) AdminReviewClaims(_ context.Context) ([]domain.Claim, error) {
	return f.claimsRes, f.err
}
func (f *fakeAPI) RequestVerification(_ context.Context, claimID, userID int64) (string, error) {
	f.claimID, f.userID = claimID, userID
	return f.msg, f.err
}
func (f *fakeAPI) SubmitVerification(_ context.Context, code string, claimID int64) (string, error) {
	return f.msg, f.err
}
func (f *fakeAPI) SetToken(token string) { f.token = token }

var _ api.Client = (*fakeAPI)(nil)

func newTestApp(t *testing.T, fc *fakeAPI, u *domain.User, r *bufio.Reader) *App {
	t.Helper()
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"), logging.NewText())
	if u != nil {
		require.NoError(t, store.Set(context.Background(), &session.Session{User: u, Token: "t"}))
	}
	return &App{
		store:  store,
		client: fc,
		auth:   services.NewAuthService(fc, store),
		items:  services.NewItemService(fc, store),
		claims: services.NewClaimService(fc, store),
		log:    logging.NewText(),
		reader: r,
	}
}

// ------------ tests ------------

func TestClaim_FullFlow(t *testing.T) {
	muteOutput(t)

	fc := &fakeAPI{
		itemRes: &domain.Item{
			ID: 10, Title: "Silver Watch", IsLost: false,
			User: &domain.UserRef{ID: 3, Username: "finder"},
		},
		msg: "Claim submitted successfully!",
	}
	app := newTestApp(t, fc, &domain.User{ID: 5, Username: "alice", Role: domain.RoleUser},
		readerFromLines("it has my initials on the back", "", "proof.png"))

	require.NoError(t, app.Claim(context.Background(), "10"))
	assert.Equal(t, int64(10), fc.newClaim.ItemID)
	assert.Equal(t, int64(5), fc.newClaim.UserID)
	assert.Equal(t, "it has my initials on the back", fc.newClaim.Description)
	assert.Equal(t, "proof.png", fc.proofPath)
}

func TestClaim_OwnItemRefusedBeforePrompts(t *testing.T) {
	printed := muteOutput(t)

	fc := &fakeAPI{itemRes: &domain.Item{
		ID: 10, Title: "Silver Watch",
		User: &domain.UserRef{ID: 5, Username: "alice"},
	}}
	// An empty reader: the refusal must come before any prompt is read.
	app := newTestApp(t, fc, &domain.User{ID: 5, Username: "alice", Role: domain.RoleUser},
		bufio.NewReader(strings.NewReader("")))

	err := app.Claim(context.Background(), "10")
	assert.ErrorIs(t, err, domain.ErrOwnItem)
	assert.Contains(t, strings.Join(*printed, "\n"), "cannot claim an item you reported")
	assert.Zero(t, fc.newClaim.ItemID)
}

func TestForward_LocatesClaimThroughItem(t *testing.T) {
	muteOutput(t)

	fc := &fakeAPI{
		itemRes: &domain.Item{
			ID: 10, Title: "Silver Watch",
			User: &domain.UserRef{ID: 3, Username: "finder"},
		},
		claimsRes: []domain.Claim{
			{ID: 21, ItemID: 10, UserID: 5, Status: domain.StatusPending},
		},
		msg: "Claim forwarded to admin for review.",
	}
	app := newTestApp(t, fc, &domain.User{ID: 3, Username: "finder", Role: domain.RoleUser},
		readerFromLines("10"))

	require.NoError(t, app.Forward(context.Background(), "21"))
	assert.Equal(t, int64(21), fc.claimID)
	assert.Equal(t, int64(3), fc.userID)
}

func TestForward_UnknownClaim(t *testing.T) {
	muteOutput(t)

	fc := &fakeAPI{
		itemRes: &domain.Item{ID: 10, User: &domain.UserRef{ID: 3, Username: "finder"}},
	}
	app := newTestApp(t, fc, &domain.User{ID: 3, Username: "finder", Role: domain.RoleUser},
		readerFromLines("10"))

	err := app.Forward(context.Background(), "99")
	assert.ErrorIs(t, err, errClaimNotListed)
	assert.Zero(t, fc.claimID)
}

func TestApprove_FromReviewList(t *testing.T) {
	muteOutput(t)

	fc := &fakeAPI{
		claimsRes: []domain.Claim{{ID: 22, ItemID: 10, UserID: 5, Status: domain.StatusForwarded}},
		msg:       "Claim approved.",
	}
	app := newTestApp(t, fc, &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin},
		bufio.NewReader(strings.NewReader("")))

	require.NoError(t, app.Approve(context.Background(), "22"))
	assert.Equal(t, int64(22), fc.claimID)
}

func TestReject_PassesReason(t *testing.T) {
	muteOutput(t)

	fc := &fakeAPI{
		claimsRes: []domain.Claim{{ID: 22, ItemID: 10, UserID: 5, Status: domain.StatusForwarded}},
		msg:       "Claim rejected.",
	}
	app := newTestApp(t, fc, &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin},
		readerFromLines("insufficient proof"))

	require.NoError(t, app.Reject(context.Background(), "22"))
	assert.Equal(t, "insufficient proof", fc.reason)
}

func TestApprove_NotOnReviewList(t *testing.T) {
	printed := muteOutput(t)

	fc := &fakeAPI{}
	app := newTestApp(t, fc, &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin},
		bufio.NewReader(strings.NewReader("")))

	err := app.Approve(context.Background(), "22")
	assert.ErrorIs(t, err, errClaimNotListed)
	assert.Contains(t, strings.Join(*printed, "\n"), "not awaiting review")
}

func TestLogin_InstallsToken(t *testing.T) {
	muteOutput(t)

	origPw := getPassword
	getPassword = func(prompt string, _ io.Writer) (string, error) {
		return "secret1", nil
	}
	t.Cleanup(func() { getPassword = origPw })

	fc := &fakeAPI{loginRes: &api.LoginResult{
		User:  domain.User{ID: 5, Username: "alice", Role: domain.RoleUser},
		Token: "jwt-token",
	}}
	app := newTestApp(t, fc, nil, readerFromLines("a@b.com"))

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "jwt-token", fc.token)
	require.NotNil(t, app.store.User())
	assert.Equal(t, "alice", app.store.User().Username)
}
