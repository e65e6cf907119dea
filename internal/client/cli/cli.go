package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/platebook/platebook/internal/client/auth"
	"github.com/platebook/platebook/internal/client/data"
	"github.com/platebook/platebook/internal/client/iocli"
	"github.com/platebook/platebook/internal/client/sync"
)

// Cli wires the command handlers to the client services.
type Cli struct {
	io   iocli.IO
	auth auth.Service
	data data.Service
	sync sync.Service
}

func New(io iocli.IO, authService auth.Service, dataService data.Service, syncService sync.Service) *Cli {
	return &Cli{
		io:   io,
		auth: authService,
		data: dataService,
		sync: syncService,
	}
}

// Run dispatches a command. A non-nil error means the command failed and the
// caller should exit non-zero.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Fprintln(os.Stderr, "Platebook Client")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  platebook [OPTIONS] COMMAND")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --version          Show version information")
	fmt.Fprintln(os.Stderr, "  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Fprintln(os.Stderr, "  --db PATH          Path to local database (default: platebook.db)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  register                     Register a new account and log in")
	fmt.Fprintln(os.Stderr, "  login                        Log in to the server")
	fmt.Fprintln(os.Stderr, "  logout                       Remove the local session")
	fmt.Fprintln(os.Stderr, "  status                       Show session and pending changes")
	fmt.Fprintln(os.Stderr, "  add (place|curation)         Add a new entry")
	fmt.Fprintln(os.Stderr, "  list (places|curations)      List local entries")
	fmt.Fprintln(os.Stderr, "  show COLLECTION ID           Show one entry in full")
	fmt.Fprintln(os.Stderr, "  edit COLLECTION ID           Edit an entry")
	fmt.Fprintln(os.Stderr, "  delete COLLECTION ID         Delete an entry that was never synced")
	fmt.Fprintln(os.Stderr, "  sync                         Synchronize with the server")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  platebook register")
	fmt.Fprintln(os.Stderr, "  platebook add place")
	fmt.Fprintln(os.Stderr, "  platebook list places")
	fmt.Fprintln(os.Stderr, "  platebook show places b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Fprintln(os.Stderr, "  platebook sync")
	fmt.Fprintln(os.Stderr, "  platebook --server https://example.com login")
}
