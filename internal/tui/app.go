package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helpie/internal/config"
	"github.com/jask/helpie/internal/notify"
	"github.com/jask/helpie/internal/provider"
	"github.com/jask/helpie/internal/service"
	"github.com/jask/helpie/internal/session"
)

// App is the provider admin panel.
type App struct {
	ctx      context.Context
	cfg      config.Config
	admin    *service.Admin
	tray     *notify.Tray
	identity session.Identity
	backdrop Backdrop
	logger   *slog.Logger
	keys     keyMap

	// signedIn mirrors identity.Current at startup and is cleared on the
	// loop once sign out succeeds; View never calls the identity.
	signedIn bool

	cursor int
	modal  modalState
	target deleteTarget
	find   textinput.Model
	width  int
	height int
}

// Deps are the collaborators the panel calls into.
type Deps struct {
	Admin    *service.Admin
	Tray     *notify.Tray
	Identity session.Identity
	Backdrop Backdrop
	Logger   *slog.Logger
}

type modalState string

const (
	modalNone          modalState = ""
	modalConfirmDelete modalState = "confirmDelete"
	modalFind          modalState = "find"
)

type deleteTarget struct {
	ID   int
	Name string
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	backdrop := deps.Backdrop
	if backdrop == nil {
		backdrop = NewSceneBackdrop(cfg.UI.Scene)
	}
	find := textinput.New()
	find.Prompt = "/ "
	find.Placeholder = "provider name"
	find.CharLimit = 64
	signedIn := false
	if deps.Identity != nil {
		_, signedIn = deps.Identity.Current()
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		admin:    deps.Admin,
		tray:     deps.Tray,
		identity: deps.Identity,
		backdrop: backdrop,
		logger:   logger,
		keys:     newKeyMap(),
		find:     find,
		signedIn: signedIn,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		cmd = a.handleKey(m)
	case deleteDueMsg:
		a.admin.CompleteDelete(m.ID)
		a.clampCursor()
	case toastExpiredMsg:
		a.tray.Expire(m.ID)
	case signedOutMsg:
		if m.err != nil {
			a.logger.Error("sign out failed", "err", m.err)
			a.tray.Notify("Sign out failed: "+m.err.Error(), notify.KindError, notify.Options{})
			break
		}
		a.signedIn = false
		a.logger.Info("signed out")
		cmd = tea.Quit
	}
	return a, tea.Batch(cmd, a.expireToasts())
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch a.modal {
	case modalConfirmDelete:
		return a.handleConfirmKey(m)
	case modalFind:
		return a.handleFindKey(m)
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < a.admin.Providers.Len()-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Toggle):
		if r, ok := a.selected(); ok {
			a.admin.ToggleSuspicious(r.ID)
		}
	case key.Matches(m, a.keys.Activity):
		if r, ok := a.selected(); ok {
			a.admin.ViewActivity(r.Name, r.Suspicious)
		}
	case key.Matches(m, a.keys.Delete):
		if r, ok := a.selected(); ok {
			a.target = deleteTarget{ID: r.ID, Name: r.Name}
			a.modal = modalConfirmDelete
		}
	case key.Matches(m, a.keys.Find):
		a.modal = modalFind
		a.find.SetValue("")
		return a.find.Focus()
	case key.Matches(m, a.keys.SignOut):
		if a.identity == nil {
			return tea.Quit
		}
		return a.signOutCmd()
	}
	return nil
}

// handleConfirmKey blocks every other action until the prompt is answered.
func (a *App) handleConfirmKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case m.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(m, a.keys.Yes):
		target := a.target
		a.modal = modalNone
		a.target = deleteTarget{}
		if a.admin.RequestDelete(target.ID, target.Name, true) {
			return a.scheduleDelete(target.ID)
		}
	case key.Matches(m, a.keys.No):
		target := a.target
		a.modal = modalNone
		a.target = deleteTarget{}
		a.admin.RequestDelete(target.ID, target.Name, false)
	}
	return nil
}

func (a *App) handleFindKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case m.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(m, a.keys.Close):
		a.closeFind()
		return nil
	case key.Matches(m, a.keys.Submit):
		query := a.find.Value()
		a.closeFind()
		if idx, ok := provider.Closest(a.admin.Providers.List(), query); ok {
			a.cursor = idx
			return nil
		}
		a.tray.Notify(`No provider matches "`+query+`".`, notify.KindInfo, notify.Options{})
		return nil
	}
	var cmd tea.Cmd
	a.find, cmd = a.find.Update(m)
	return cmd
}

func (a *App) closeFind() {
	a.modal = modalNone
	a.find.Blur()
}

// scheduleDelete defers the removal by the configured delay. The tick is
// never cancelled.
func (a *App) scheduleDelete(id int) tea.Cmd {
	return tea.Tick(a.cfg.UI.DeleteDelay, func(time.Time) tea.Msg {
		return deleteDueMsg{ID: id}
	})
}

// signOutCmd runs off the loop, so it only touches the identity and the
// context captured here.
func (a *App) signOutCmd() tea.Cmd {
	ctx, identity := a.ctx, a.identity
	return func() tea.Msg {
		return signedOutMsg{err: identity.SignOut(ctx)}
	}
}

// expireToasts schedules removal for toasts raised during this update.
func (a *App) expireToasts() tea.Cmd {
	fresh := a.tray.Flush()
	if len(fresh) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(fresh))
	for _, t := range fresh {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.TTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{ID: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (a *App) selected() (provider.Record, bool) {
	list := a.admin.Providers.List()
	if a.cursor < 0 || a.cursor >= len(list) {
		return provider.Record{}, false
	}
	return list[a.cursor], true
}

func (a *App) clampCursor() {
	n := a.admin.Providers.Len()
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// messages
type deleteDueMsg struct{ ID int }

type toastExpiredMsg struct{ ID string }

type signedOutMsg struct{ err error }
