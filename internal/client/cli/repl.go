package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	allowed(r nav.Route) bool
	loggedIn() bool
	helpText() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Items(ctx context.Context, status string) error
	Show(ctx context.Context, id string) error
	Report(ctx context.Context) error
	Claim(ctx context.Context, itemID string) error
	MyClaims(ctx context.Context) error
	Forward(ctx context.Context, claimID string) error
	Review(ctx context.Context) error
	Approve(ctx context.Context, claimID string) error
	Reject(ctx context.Context, claimID string) error
	Verify(ctx context.Context, claimID string) error
}

// commandRoutes maps each REPL command onto the screen it belongs to, so
// reachability is decided by the navigation policy instead of ad-hoc role
// checks in the loop.
var commandRoutes = map[string]nav.Route{
	"register": nav.RouteSignup,
	"login":    nav.RouteLogin,
	"logout":   nav.RouteHome,
	"items":    nav.RouteItems,
	"show":     nav.RouteItemDetail,
	"report":   nav.RouteSubmitItem,
	"claim":    nav.RouteItemDetail,
	"myclaims": nav.RouteMyClaims,
	"forward":  nav.RouteItemDetail,
	"verify":   nav.RouteVerify,
	"review":   nav.RouteAdminReview,
	"approve":  nav.RouteAdminReview,
	"reject":   nav.RouteAdminReview,
}

// commandsWithArg lists the commands that require an identifier argument.
var commandsWithArg = map[string]string{
	"show":    "show <itemId>",
	"claim":   "claim <itemId>",
	"forward": "forward <claimId>",
	"approve": "approve <claimId>",
	"reject":  "reject <claimId>",
	"verify":  "verify <claimId>",
}

// runREPL starts a read-eval-print loop for the lost-and-found CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Before dispatch the command's
// route is checked against the navigation policy; unreachable commands are
// refused without executing. Unknown commands are reported back to the user.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("laf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn(a.helpText())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		route, known := commandRoutes[cmd]
		if !known {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.allowed(route) {
			if a.loggedIn() {
				printlnFn("That command is not available for your account.")
			} else {
				printlnFn("You must log in first (type 'login' or 'register').")
			}
			continue
		}
		if usage, needsArg := commandsWithArg[cmd]; needsArg && arg == "" {
			printlnFn("Usage: " + usage)
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "items":
			_ = a.Items(ctx, arg)
		case "show":
			_ = a.Show(ctx, arg)
		case "report":
			_ = a.Report(ctx)
		case "claim":
			_ = a.Claim(ctx, arg)
		case "myclaims":
			_ = a.MyClaims(ctx)
		case "forward":
			_ = a.Forward(ctx, arg)
		case "review":
			_ = a.Review(ctx)
		case "approve":
			_ = a.Approve(ctx, arg)
		case "reject":
			_ = a.Reject(ctx, arg)
		case "verify":
			_ = a.Verify(ctx, arg)
		}
	}
}
