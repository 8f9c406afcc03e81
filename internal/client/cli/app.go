package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/config"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/repositories/sessiondata"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/session"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/storage"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/views"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionService is the slice of the session manager the command handlers
// need. Tests substitute a fake.
type sessionService interface {
	Current() session.Session
	Login(ctx context.Context, in api.LoginInput) (session.Session, error)
	Register(ctx context.Context, in api.RegisterInput) error
	Logout(ctx context.Context)
	Hydrate(ctx context.Context)
	OnChange(fn func())
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions sessionService
	api      api.Client

	posts      *views.PostListView
	detail     *views.PostDetailView
	comments   *views.CommentsView
	searchView *views.SearchView

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := sessiondata.NewSQLiteStore(db)
	mgr := session.NewManager(store, log)

	apiClient := api.NewHTTPClient(c.APIBaseURL, mgr.CurrentToken, c.RequestTimeout)
	mgr.SetEndpoint(apiClient)

	a := &App{
		config:     c,
		log:        log,
		db:         db,
		sessions:   mgr,
		api:        apiClient,
		posts:      views.NewPostListView(apiClient, log, c.PageSize),
		detail:     views.NewPostDetailView(apiClient, mgr, log),
		comments:   views.NewCommentsView(apiClient, log),
		searchView: views.NewSearchView(apiClient, log, c.PageSize),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}

	// Ownership shown in the detail view depends on who is logged in, so a
	// session change invalidates whatever the view currently holds.
	mgr.OnChange(func() {
		if _, post, _, _ := a.detail.Snapshot(); post != nil {
			a.detail.Reload(context.Background())
		}
	})

	return a, nil
}

// Run restores any persisted session and drives the REPL until the user
// exits. The database handle is closed on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.sessions.Hydrate(ctx)

	fmt.Println("BlogTalks CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().LoggedIn()
}

func (a *App) getStatus() string {
	s := a.sessions.Current()
	if !s.LoggedIn() {
		return "(guest)"
	}
	name := ""
	if s.Identity != nil {
		name = s.Identity.DisplayName
		if name == "" {
			name = s.Identity.Email
		}
	}
	if name == "" {
		name = "logged in"
	}
	return fmt.Sprintf("(%s)", name)
}
