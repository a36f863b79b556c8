package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Session is the part of directory.Session the console drives.
type Session interface {
	OnChange(fn func(directory.View))
	View() directory.View
	Mirror() directory.Mirror
	Moderation() *directory.Moderation
	SignUp(ctx context.Context, userName, email, password string) error
	SignIn(ctx context.Context, email, password string) error
	Restore(ctx context.Context) (bool, error)
	SignOut(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	ApplyBulkStatus(ctx context.Context, target directory.Status) ([]string, error)
	Close()
}

// Pinger checks that the server answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	session       Session
	pinger        Pinger
	logger        logging.Logger
	checkInterval time.Duration
	reader        *bufio.Reader
	out           io.Writer

	mu             sync.Mutex
	Mode           Mode
	lastState      directory.State
	restorePending bool
}

func NewApp(session Session, pinger Pinger, checkInterval time.Duration, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		session:       session,
		pinger:        pinger,
		logger:        logger.With("module", "cli"),
		checkInterval: checkInterval,
		reader:        bufio.NewReader(in),
		out:           out,
		Mode:          ModeOnline,
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()
	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) state() directory.State {
	return a.session.View().State
}

func (a *App) signedIn() bool {
	return a.session.View().Identity != nil
}

// getStatus renders the prompt suffix: user name, view state and mode.
func (a *App) getStatus() string {
	v := a.session.View()
	s := v.State.String()
	if v.State != directory.Anonymous && v.Own.UserName != "" {
		s = v.Own.UserName + " " + s
	}
	return fmt.Sprintf("(%s %s)", s, a.mode())
}

// onView reports view state transitions pushed by the synchronizer.
func (a *App) onView(v directory.View) {
	a.mu.Lock()
	prev := a.lastState
	a.lastState = v.State
	a.mu.Unlock()

	if prev == v.State {
		return
	}
	switch v.State {
	case directory.Active:
		fmt.Fprintf(a.out, "\nSigned in as %s <%s>\n", v.Own.UserName, v.Own.UserEmail)
	case directory.Blocked:
		fmt.Fprintln(a.out, "\nYour account is blocked.", helpText(directory.Blocked, true))
	case directory.Anonymous:
		if v.Identity != nil {
			fmt.Fprintln(a.out, "\nYour profile is not in the directory yet.")
		}
	}
}

// Run restores a persisted session, starts the connectivity watcher and
// blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.session.Close()

	a.session.OnChange(a.onView)

	fmt.Fprintln(a.out, "userdir admin console (type 'help' for commands)")

	a.restore(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.checkInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// restore resumes a persisted session. A restore that failed because the
// server was unreachable is retried by the online status watcher.
func (a *App) restore(ctx context.Context) {
	restored, err := a.session.Restore(ctx)

	a.mu.Lock()
	a.restorePending = errors.Is(err, client.ErrUnavailable)
	a.mu.Unlock()

	switch {
	case err != nil:
		a.logger.Warn(ctx, "session restore failed", "error", err)
		a.report(err)
	case restored:
		fmt.Fprintln(a.out, "Session restored")
	}
}

// retryRestore repeats a pending restore unless the user has signed in
// meanwhile.
func (a *App) retryRestore(ctx context.Context) {
	a.mu.Lock()
	pending := a.restorePending
	a.mu.Unlock()
	if !pending {
		return
	}
	if a.session.View().Identity != nil {
		a.mu.Lock()
		a.restorePending = false
		a.mu.Unlock()
		return
	}
	a.restore(ctx)
}

// StartOnlineStatusWatcher pings the server every interval and switches
// between online and offline mode until ctx is done. While online it retries
// a session restore that failed for lack of a connection.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
				a.retryRestore(ctx)
			}

		case <-ctx.Done():
			return
		}
	}
}
