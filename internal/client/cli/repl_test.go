package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/Asad-NCS/lostandfound/internal/client/nav"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type fakeExec struct {
	user *domain.User

	calls []string
	args  []string
}

func (f *fakeExec) allowed(r nav.Route) bool { return nav.Allowed(f.user, r) }
func (f *fakeExec) loggedIn() bool           { return f.user != nil }
func (f *fakeExec) helpText() string         { return "help" }

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.user = &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser}
	return f.record("login", "")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.user = nil
	return f.record("logout", "")
}
func (f *fakeExec) Items(ctx context.Context, status string) error { return f.record("items", status) }
func (f *fakeExec) Show(ctx context.Context, id string) error      { return f.record("show", id) }
func (f *fakeExec) Report(ctx context.Context) error               { return f.record("report", "") }
func (f *fakeExec) Claim(ctx context.Context, id string) error     { return f.record("claim", id) }
func (f *fakeExec) MyClaims(ctx context.Context) error             { return f.record("myclaims", "") }
func (f *fakeExec) Forward(ctx context.Context, id string) error   { return f.record("forward", id) }
func (f *fakeExec) Review(ctx context.Context) error               { return f.record("review", "") }
func (f *fakeExec) Approve(ctx context.Context, id string) error   { return f.record("approve", id) }
func (f *fakeExec) Reject(ctx context.Context, id string) error    { return f.record("reject", id) }
func (f *fakeExec) Verify(ctx context.Context, id string) error    { return f.record("verify", id) }

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func run(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	run(exec, "help", "login", "items lost", "show 10", "claim 10", "myclaims", "logout", "exit")

	want := []string{"login", "items", "show", "claim", "myclaims", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}
	if exec.args[1] != "lost" || exec.args[2] != "10" {
		t.Fatalf("args not forwarded: %v", exec.args)
	}
}

func TestRunREPL_RefusesWhenLoggedOut(t *testing.T) {
	printed := muteOutput(t)

	exec := &fakeExec{}
	run(exec, "items", "myclaims", "review", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("nothing should have run: %v", exec.calls)
	}
	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "log in first") {
		t.Fatalf("expected a login hint, got: %q", joined)
	}
}

func TestRunREPL_AdminCommandsFollowRole(t *testing.T) {
	muteOutput(t)

	user := &fakeExec{user: &domain.User{ID: 2, Username: "bob", Role: domain.RoleUser}}
	run(user, "review", "approve 5", "exit")
	if len(user.calls) != 0 {
		t.Fatalf("plain user reached admin commands: %v", user.calls)
	}

	admin := &fakeExec{user: &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}}
	run(admin, "review", "approve 5", "reject 6", "exit")
	want := []string{"review", "approve", "reject"}
	if len(admin.calls) != len(want) {
		t.Fatalf("admin calls: got %v, want %v", admin.calls, want)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	printed := muteOutput(t)

	exec := &fakeExec{user: &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}}
	run(exec, "show", "claim", "approve", "foobar", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*printed, "\n")
	if !strings.Contains(joined, "Usage: show <itemId>") {
		t.Fatalf("expected usage hint, got: %q", joined)
	}
	if !strings.Contains(joined, "Unknown command:") {
		t.Fatalf("expected unknown-command message, got: %q", joined)
	}
}

func TestRunREPL_RegisterNotAvailableWhileLoggedIn(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{user: &domain.User{ID: 2, Username: "bob", Role: domain.RoleUser}}
	run(exec, "register", "login", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("auth commands should be unreachable while logged in: %v", exec.calls)
	}
}
