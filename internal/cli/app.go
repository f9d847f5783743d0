package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/taskflow-app/taskflow/internal/config"
	"github.com/taskflow-app/taskflow/internal/export"
	"github.com/taskflow-app/taskflow/internal/filestore"
	"github.com/taskflow-app/taskflow/internal/kvstore"
	"github.com/taskflow-app/taskflow/internal/logging"
	"github.com/taskflow-app/taskflow/internal/notify"
	"github.com/taskflow-app/taskflow/internal/repositories/accounts"
	"github.com/taskflow-app/taskflow/internal/repositories/todos"
	"github.com/taskflow-app/taskflow/internal/services"
	"github.com/taskflow-app/taskflow/internal/session"
)

// App wires the storage collaborators, repositories and services
// together and carries the interactive state of the REPL.
type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *kvstore.SQLiteStore
	auth     services.AuthService
	todos    services.TodoService
	profile  services.ProfileService
	exporter export.Exporter
	reader   *bufio.Reader

	// userEmail mirrors the persisted session for prompt display.
	userEmail string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewDefault()

	store, err := kvstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init key-value store: %w", err)
	}

	files := filestore.NewOSStore(c.DataDir)
	accountRepo := accounts.NewReplicated(files, store, logger)
	todoRepo := todos.NewKVRepository(store, logger)
	sessions := session.NewManager(store)

	var sink notify.Sink
	if c.MailServiceID != "" {
		sink = notify.NewEmailJSSink(c.MailEndpoint, c.MailServiceID, c.MailTemplateID, c.MailPublicKey, c.MailTimeout)
	} else {
		sink = notify.NewLogSink(logger)
	}

	var exporter export.Exporter
	if c.S3Bucket != "" {
		exporter = export.NewS3Exporter(export.S3Config{
			BaseEndpoint: c.S3BaseEndpoint,
			Region:       c.S3Region,
			Bucket:       c.S3Bucket,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	} else {
		exporter = export.NewFileExporter(c.DataDir)
	}

	return &App{
		config:   c,
		logger:   logger,
		store:    store,
		auth:     services.NewAuthService(accountRepo, sessions),
		todos:    services.NewTodoService(todoRepo),
		profile:  services.NewProfileService(accountRepo, sessions, sink, logger),
		exporter: exporter,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

// Run restores a persisted session, greets the user and enters the
// REPL. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if email, err := a.auth.CurrentEmail(ctx); err == nil && email != "" {
		a.userEmail = email
		fmt.Printf("Welcome back, %s\n", email)
	}

	fmt.Println("Welcome to TaskFlow (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
