package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/config"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
	"github.com/dmitrijs2005/cardkeeper/internal/client/services"
	"github.com/dmitrijs2005/cardkeeper/internal/client/session"
	"github.com/dmitrijs2005/cardkeeper/internal/client/storage"
	"github.com/dmitrijs2005/cardkeeper/internal/logging"
)

// Route is the view the REPL is showing.
type Route string

const (
	RouteEntry     Route = "entry"
	RouteDashboard Route = "dashboard"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	session     *session.Manager
	authService services.AuthService
	cardService services.CardService
	dialogs     Dialogs
	reader      *bufio.Reader
	out         io.Writer
	closer      io.Closer

	route Route
	// cards is the last successfully loaded list; a failed reload keeps it.
	cards      []models.Card
	needReload bool
}

// NewApp opens the session database and builds the API client and the
// services on top of it. The persisted session is restored by Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	store := session.NewStore(db, logger)
	manager := session.NewManager(store)
	reader := bufio.NewReader(os.Stdin)

	a := &App{
		config:  c,
		logger:  logger,
		session: manager,
		dialogs: NewTerminalDialogs(reader, os.Stdout),
		reader:  reader,
		out:     os.Stdout,
		closer:  db,
		route:   RouteEntry,
	}

	apiClient := api.New(c.ServerBaseURL, store,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger),
		api.WithUnauthorizedHandler(a.handleUnauthorized),
	)
	a.authService = services.NewAuthService(apiClient)
	a.cardService = services.NewCardService(apiClient)

	manager.Subscribe(a.onUserChanged)
	return a, nil
}

// Run restores the persisted session and runs the REPL until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to cardkeeper (type 'help' for commands)")
	a.refresh(ctx)

	a.session.Init(ctx)
	a.needReload = true
	a.refresh(ctx)

	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) Close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Warn(context.Background(), "close session database", "error", err)
		}
		a.closer = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is shown in the prompt.
func (a *App) status() string {
	if user, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

// refresh brings the view in line with the session: it switches routes and
// loads the dashboard when the user changed since the last render.
func (a *App) refresh(ctx context.Context) {
	if a.session.Loading() {
		fmt.Fprintln(a.out, "Loading...")
		return
	}

	if !a.session.IsAuthenticated() {
		if a.route != RouteEntry {
			a.route = RouteEntry
			a.cards = nil
		}
		if a.needReload {
			a.needReload = false
			fmt.Fprintln(a.out, "Please log in or sign up to manage your business cards.")
		}
		return
	}

	a.route = RouteDashboard
	if a.needReload {
		if err := a.loadCards(ctx); err == nil {
			a.renderCards()
		}
	}
}

// onUserChanged is subscribed to the session manager. Every login or logout
// marks the view for re-rendering; the next refresh picks it up.
func (a *App) onUserChanged(u *models.User) {
	a.needReload = true
	if u == nil {
		a.cards = nil
	}
}

// handleUnauthorized is called by the API client on every 401. It ends the
// session through the manager and tells the user, unless they are already
// on the entry view.
func (a *App) handleUnauthorized(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout after 401", "error", err)
	}
	if a.route != RouteEntry {
		a.dialogs.Notify("Your session has expired. Please log in again.")
	}
}

// callCtx bounds a single backend call.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
