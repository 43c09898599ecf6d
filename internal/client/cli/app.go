package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/client/config"
	"github.com/avasiljevs/accountkeeper/internal/client/repositories/credentials"
	"github.com/avasiljevs/accountkeeper/internal/client/services"
	"github.com/avasiljevs/accountkeeper/internal/client/session"
	"github.com/avasiljevs/accountkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the interactive client. The session store is
// the single source of truth for login state; commands read it, services
// write it.
type App struct {
	config   *config.Config
	store    *session.Store
	auth     services.AuthService
	accounts services.AccountService
	billing  services.BillingService
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "database initialization failed", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	store := session.NewStore()
	creds := credentials.NewSQLiteRepository(db)

	accounts := services.NewAccountService(apiClient, store, log, c.SyncThrottle)
	auth := services.NewAuthService(apiClient, store, creds, accounts, log)
	billing := services.NewBillingService(apiClient, store, log)

	return &App{
		config:   c,
		store:    store,
		auth:     auth,
		accounts: accounts,
		billing:  billing,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session, performs an initial account sync, and
// enters the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.isLoggedIn() {
		if err := a.auth.EnsureFreshToken(ctx, a.config.TokenRefreshWindow); err != nil {
			a.log.Warn(ctx, "token refresh failed", "error", err)
		}
		if err := a.accounts.FetchAccount(ctx, false); err != nil {
			a.log.Warn(ctx, "initial account sync failed", "error", err)
		}
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.Token() != ""
}

// getStatus builds the short prompt suffix, e.g. "(alice scale)".
func (a *App) getStatus() string {
	snap := a.store.Snapshot()
	s := ""
	if snap.User != nil && snap.User.Username != "" {
		s = snap.User.Username
	}
	if snap.Subscription != nil {
		if s != "" {
			s += " "
		}
		s += string(snap.Subscription.Tier)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to AccountKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
