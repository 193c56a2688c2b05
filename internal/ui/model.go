package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/research-console/internal/backend"
	"github.com/atomicstack/research-console/internal/data/dispatcher"
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/atomicstack/research-console/internal/state"
	"github.com/atomicstack/research-console/internal/theme"
	"github.com/atomicstack/research-console/internal/ui/command"
	uistate "github.com/atomicstack/research-console/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "research console"
	searchPlaceholder   = "design name"
	gaugeWidth          = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Mouse      bool
	Watcher    *backend.Watcher
	Sender     command.Sender
	Store      state.SnapshotStore
}

// Model implements the Bubble Tea model for the research console.
type Model struct {
	level          *level
	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	backend        *backend.Watcher
	backendLastErr string
	showFooter     bool
	verbose        bool
	overlayShown   bool

	search textinput.Model
	gauge  progress.Model
	zones  *zone.Manager
	prefix string

	handlers map[reflect.Type]msgHandler

	registry   *menu.Registry
	bus        *command.Bus
	snapshots  state.SnapshotStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state from the provided options.
func NewModel(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = state.NewSnapshotStore()
	}
	m := &Model{
		level:      uistate.NewLevel("", rnd.Nav{}),
		registry:   menu.BuildRegistry(),
		bus:        command.New(opts.Sender),
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		snapshots:  store,
		dispatcher: dispatcher.New(store),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if opts.Mouse {
		m.zones = zone.New()
		m.prefix = m.zones.NewPrefix()
	}
	m.search = newSearchInput()
	m.gauge = progress.New(progress.WithSolidFill("33"), progress.WithoutPercentage(), progress.WithWidth(gaugeWidth))
	if store.Ready() {
		m.syncScreen(true)
	}
	m.registerHandlers()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.SearchPrompt != nil {
		ti.PromptStyle = *styles.SearchPrompt
	}
	if styles.Search != nil {
		ti.TextStyle = *styles.Search
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = *styles.Placeholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Close releases the mouse zone worker.
func (m *Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

func (m *Model) currentLevel() *level {
	return m.level
}

// blocks renders the current snapshot. Rendering is pure, so it runs on every
// call instead of being cached.
func (m *Model) blocks() []menu.Block {
	if !m.snapshots.Ready() {
		return nil
	}
	return m.registry.Render(m.snapshots.Current())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
