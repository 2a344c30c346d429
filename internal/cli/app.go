// Package cli drives a provisioning run end to end: it probes the store,
// picks the config or the interactive source, applies the account specs in
// order, and reports one line per account.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/plakawatch/provision/internal/common"
	"github.com/plakawatch/provision/internal/config"
	"github.com/plakawatch/provision/internal/logging"
	"github.com/plakawatch/provision/internal/provision"
	"github.com/plakawatch/provision/internal/storage"
)

const (
	defaultAdminEmail    = "admin@plakawatch.local"
	defaultAdminPassword = "PlakaWatch123!"
	defaultAdminName     = "Admin"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      storage.RepositoryManager
	reconciler *provision.Reconciler
	reader     *bufio.Reader
	out        io.Writer
}

// plan is the gathered set of desired accounts for one run, applied in
// the order they were supplied or entered.
type plan struct {
	admin  config.AccountSpec
	guards []config.AccountSpec
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.Open(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	return &App{
		config:     cfg,
		logger:     logger,
		store:      store,
		reconciler: provision.NewReconciler(store),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run executes one provisioning pass. A nil return means every gathered
// account was reconciled; any error is fatal for the run and the caller
// maps it to a non-zero exit code.
func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	if err := a.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	if written, err := config.WriteExampleIfAbsent(a.config.ExamplePath); err != nil {
		a.logger.Warn(ctx, "could not write example accounts file", "path", a.config.ExamplePath, "error", err)
	} else if written {
		a.logger.Info(ctx, "wrote example accounts file", "path", a.config.ExamplePath)
	}

	p, err := a.gather(ctx)
	if err != nil {
		return err
	}
	return a.apply(ctx, p)
}

// gather chooses the source: the accounts file when present and valid,
// interactive prompts otherwise. A file missing required admin fields is
// fatal; an unreadable file only triggers the interactive fallback.
func (a *App) gather(ctx context.Context) (*plan, error) {
	f, err := config.LoadAccounts(a.config.AccountsPath)
	if err != nil {
		a.logger.Warn(ctx, "could not read accounts file, falling back to prompts", "error", err)
	}
	if f == nil {
		return a.gatherInteractive()
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Creating accounts from %s...\n", a.config.AccountsPath)
	p := &plan{admin: f.Admin}
	for _, g := range f.Guards {
		if g.Email == "" || g.Password == "" {
			a.logger.Warn(ctx, "skipping guard with missing email or password", "email", g.Email)
			continue
		}
		p.guards = append(p.guards, g)
	}
	return p, nil
}

func (a *App) gatherInteractive() (*plan, error) {
	fmt.Fprintf(a.out, "\n--- PlakaWatch: create admin and guard accounts ---\n\n")

	adminEmail, err := Ask(a.reader, "Admin email", defaultAdminEmail, a.out)
	if err != nil {
		return nil, err
	}
	adminPassword, err := AskSecret("Admin password", defaultAdminPassword, a.out)
	if err != nil {
		return nil, err
	}
	adminName, err := Ask(a.reader, "Admin display name", defaultAdminName, a.out)
	if err != nil {
		return nil, err
	}

	p := &plan{admin: config.AccountSpec{Email: adminEmail, Password: adminPassword, Name: adminName}}

	answer, err := Ask(a.reader, "Add a guard account? (y/n)", "y", a.out)
	if err != nil {
		return nil, err
	}
	for isYes(answer) {
		email, err := Ask(a.reader, "Guard email", "", a.out)
		if err != nil {
			return nil, err
		}
		if email == "" {
			break
		}
		password, err := AskSecret("Guard password", "", a.out)
		if err != nil {
			return nil, err
		}
		if password == "" {
			break
		}
		name, err := Ask(a.reader, "Guard display name", provision.LocalPart(provision.NormalizeEmail(email)), a.out)
		if err != nil {
			return nil, err
		}
		p.guards = append(p.guards, config.AccountSpec{Email: email, Password: password, Name: name})

		answer, err = Ask(a.reader, "Add another guard? (y/n)", "n", a.out)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (a *App) apply(ctx context.Context, p *plan) error {
	outcome, err := a.reconciler.ReconcileAdmin(ctx, p.admin.Email, p.admin.Password, p.admin.Name)
	if err != nil {
		return fmt.Errorf("reconciling admin: %w", err)
	}
	fmt.Fprintf(a.out, "  Admin %s: %s\n", outcome, provision.NormalizeEmail(p.admin.Email))

	for _, g := range p.guards {
		outcome, err := a.reconciler.ReconcileGuard(ctx, g.Email, g.Password, g.Name)
		if err != nil {
			return fmt.Errorf("reconciling guard %s: %w", provision.NormalizeEmail(g.Email), err)
		}
		fmt.Fprintf(a.out, "  Guard %s: %s\n", outcome, provision.NormalizeEmail(g.Email))
	}

	fmt.Fprintf(a.out, "\nDone. You can now log in with the accounts above.\n")
	return nil
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
