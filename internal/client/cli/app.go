package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/config"
	"github.com/Asad-NCS/lostandfound/internal/client/nav"
	"github.com/Asad-NCS/lostandfound/internal/client/services"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/logging"
)

// App wires the session store, the application services and the terminal loop
// together. One instance lives for the duration of the program.
type App struct {
	config *config.Config
	store  *session.Store
	client api.Client
	auth   *services.AuthService
	items  *services.ItemService
	claims *services.ClaimService
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewText()

	store, err := session.NewStore(log)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout)

	return &App{
		config: c,
		store:  store,
		auth:   services.NewAuthService(apiClient, store),
		items:  services.NewItemService(apiClient, store),
		claims: services.NewClaimService(apiClient, store),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		client: apiClient,
	}, nil
}

// Run restores a persisted session if one exists, then hands control to the
// REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	if err := a.store.Load(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if token := a.store.Token(); token != "" {
		a.client.SetToken(token)
	}
	if u := a.store.User(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Username))
	}

	printlnFn("Lost & Found CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) loggedIn() bool {
	return a.store.User() != nil
}

func (a *App) allowed(r nav.Route) bool {
	return nav.Allowed(a.store.User(), r)
}

func (a *App) getStatus() string {
	u := a.store.User()
	if u == nil {
		return ""
	}
	if u.IsAdmin() {
		return fmt.Sprintf("(%s, admin)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}

// helpText lists the commands reachable from the current session, derived
// from the navigation policy so it never advertises a screen the user cannot
// open.
func (a *App) helpText() string {
	reachable := map[nav.Route]bool{}
	for _, r := range nav.Routes(a.store.User()) {
		reachable[r] = true
	}

	var cmds []string
	for _, c := range commandOrder {
		if reachable[commandRoutes[c]] {
			cmds = append(cmds, c)
		}
	}
	cmds = append(cmds, "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// commandOrder fixes the help listing order; maps iterate randomly.
var commandOrder = []string{
	"register", "login", "items", "show", "report", "claim",
	"myclaims", "forward", "verify", "review", "approve", "reject", "logout",
}
