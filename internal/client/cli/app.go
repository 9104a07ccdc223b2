package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authpanel/internal/client/config"
	"github.com/dmitrijs2005/authpanel/internal/client/panel"
	"github.com/dmitrijs2005/authpanel/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authpanel/internal/filex"
	"github.com/dmitrijs2005/authpanel/internal/logging"
)

type App struct {
	config *config.Config
	panel  *panel.Panel
	store  io.Closer
	reader *bufio.Reader
	log    logging.Logger
}

// NewApp opens the store named in c and builds a panel rendered on
// stdin/stdout. Logs go to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, level)

	if filex.IsFilePath(c.StoragePath) {
		if err := filex.EnsureParentDir(c.StoragePath); err != nil {
			return nil, err
		}
	}

	store, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing store", "path", c.StoragePath, "error", err)
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)
	app, err := newApp(c, store, store, reader, os.Stdout, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, store storage.Store, closer io.Closer, reader *bufio.Reader, out io.Writer, log logging.Logger) (*App, error) {
	ui := NewTerminalUI(reader, out)

	p, err := panel.New(panel.Options{
		Store:     store,
		UI:        ui,
		Fields:    ui,
		Navigator: ui,
		Bindings:  panel.DefaultBindings(),
		Dashboard: c.DashboardURL,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("build panel: %w", err)
	}

	return &App{config: c, panel: p, store: closer, reader: reader, log: log}, nil
}

// Run blocks in the REPL until the user exits, input ends or ctx is done,
// then closes the store.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.store == nil {
			return
		}
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "closing store", "error", err)
		}
	}()

	a.log.Info(ctx, "auth panel started", "storage", a.config.StoragePath)
	printlnFn("Welcome to the auth panel (type 'help' for commands)")
	runREPL(ctx, a.panel, a.reader)
}
