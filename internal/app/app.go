package app

import (
	"context"
	"sync"

	"taskclient/internal/actions"
	"taskclient/internal/api"
	"taskclient/internal/config"
	"taskclient/internal/keychain"
	"taskclient/internal/logger"
	"taskclient/internal/notify"
	"taskclient/internal/store"
)

// App owns the wired client: stores, the API client and the action
// handlers over them. Stores are process-wide singletons within one App;
// tests build a fresh App (or fresh stores) for isolation.
type App struct {
	config *config.Config
	creds  keychain.Store
	client *api.Client

	Session    *store.Session
	Tasks      *store.Tasks
	Categories *store.Categories
	Priorities *store.Priorities

	Auth     *actions.AuthActions
	Task     *actions.TaskActions
	Category *actions.CategoryActions
	Priority *actions.PriorityActions

	mtx       sync.Mutex
	phase     Phase
	shutdowns []func()
}

func New(cfg *config.Config, creds keychain.Store) *App {
	return &App{
		config:     cfg,
		creds:      creds,
		phase:      PhaseIdle,
		shutdowns:  make([]func(), 0),
		Session:    store.NewSession(),
		Tasks:      store.NewTasks(),
		Categories: store.NewCategories(),
		Priorities: store.NewPriorities(),
		client:     api.New(cfg, creds),
	}
}

// Init brings up logging and wires the action handlers over the stores.
func (a *App) Init(notifier notify.Notifier) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return err
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Flushing logs...")
		logger.Sync()
	})

	a.Auth = actions.NewAuthActions(a.client, a.Session, a.creds, notifier)
	a.Task = actions.NewTaskActions(a.client, a.Tasks, notifier)
	a.Category = actions.NewCategoryActions(a.client, a.Categories, notifier)
	a.Priority = actions.NewPriorityActions(a.client, a.Priorities, notifier)

	return nil
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}

// Bootstrap restores the session from the credential slot, once per
// process. All storage failures collapse into Unauthenticated: an empty
// slot is the expected first-run state, never a user-visible error.
func (a *App) Bootstrap(ctx context.Context) Phase {
	a.mtx.Lock()
	if a.phase != PhaseIdle {
		phase := a.phase
		a.mtx.Unlock()
		return phase
	}
	a.phase = PhaseCheckingStorage
	a.mtx.Unlock()

	phase := PhaseUnauthenticated
	if auth, err := a.creds.Get(ctx); err == nil {
		a.Session.SetSession(auth)
		phase = PhaseAuthenticated
	} else {
		logger.Info("BOOTSTRAP: No stored session, starting unauthenticated")
	}

	a.mtx.Lock()
	a.phase = phase
	a.mtx.Unlock()
	return phase
}

func (a *App) Phase() Phase {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.phase
}
