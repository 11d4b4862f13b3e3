package ui

import (
	"errors"
	"time"

	"memento/internal/api"
	"memento/internal/debug"
	appErrors "memento/internal/errors"
	"memento/internal/session"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minViewportWidth  = 20
	minViewportHeight = 5
	defaultLimit      = 5
)

// FocusArea identifies which dashboard section owns the cursor.
type FocusArea int

const (
	FocusConversations FocusArea = iota
	FocusPeople
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenConversationDetail
	screenPersonDetail
)

// Config configures the UI application.
type Config struct {
	Client api.Client
	Store  session.CredentialStore

	// ConversationLimit is passed upstream on the conversations fetch;
	// PeopleLimit caps the people collection after receipt.
	ConversationLimit int
	PeopleLimit       int

	OutputFormat string
	Version      string

	// Now supplies the reference time for relative-date rendering.
	// Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// App implements the Bubble Tea model for the Memento dashboard.
type App struct {
	client api.Client
	store  session.CredentialStore

	screen screen
	width  int
	height int
	ready  bool

	// Session state. sessionReady flips once identity resolution succeeds;
	// everything below it is scoped to that session and reset on re-login.
	sessionReady bool
	user         api.User
	login        loginForm
	loginErr     string
	loggingIn    bool

	// generation tags in-flight fetches; results from an older generation
	// are dropped on arrival so stale data never overwrites current state.
	generation           int
	conversations        []api.Conversation
	people               []api.Person
	conversationsLoading bool
	peopleLoading        bool
	conversationsSettled bool

	focus        FocusArea
	convCursor   int
	peopleCursor int
	detailID     string

	spinner  spinner.Model
	viewport viewport.Model

	conversationLimit int
	peopleLimit       int
	outputFormat      string
	version           string
	now               func() time.Time
	statusNote        string
}

// NewApp creates a new UI app instance based on configuration.
func NewApp(cfg Config) *App {
	if cfg.ConversationLimit <= 0 {
		cfg.ConversationLimit = defaultLimit
	}
	if cfg.PeopleLimit <= 0 {
		cfg.PeopleLimit = defaultLimit
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	return &App{
		client:            cfg.Client,
		store:             cfg.Store,
		screen:            screenDashboard,
		login:             newLoginForm(),
		conversations:     []api.Conversation{},
		people:            []api.Person{},
		spinner:           sp,
		conversationLimit: cfg.ConversationLimit,
		peopleLimit:       cfg.PeopleLimit,
		outputFormat:      cfg.OutputFormat,
		version:           cfg.Version,
		now:               nowFn,
	}
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, resolveSessionCmd(m.client, m.store))
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = clampDimension(msg.Width-4, minViewportWidth, msg.Width)
		m.viewport.Height = clampDimension(msg.Height-6, minViewportHeight, msg.Height)
		if m.screen == screenConversationDetail || m.screen == screenPersonDetail {
			m.updateViewportContent()
		}
		return m, nil

	case sessionResolvedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, session.ErrNoCredential) {
				debug.Logf("session resolution failed: %v", msg.err)
				m.loginErr = "Session expired — please sign in again."
			}
			m.screen = screenLogin
			return m, textinput.Blink
		}
		m.user = msg.session.User
		m.sessionReady = true
		m.screen = screenDashboard
		return m, m.startFetches()

	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			if appErrors.IsCode(msg.err, appErrors.CodeInvalidCredentials) {
				m.loginErr = "Invalid email or password."
			} else {
				debug.Logf("login failed: %v", msg.err)
				m.loginErr = "Could not reach the server. Try again."
			}
			return m, nil
		}
		m.user = msg.result.User
		m.sessionReady = true
		m.screen = screenDashboard
		m.loginErr = ""
		return m, m.startFetches()

	case conversationsLoadedMsg:
		if msg.generation != m.generation {
			debug.Logf("dropping stale conversations result (generation %d, current %d)", msg.generation, m.generation)
			return m, nil
		}
		m.conversations = msg.items
		m.conversationsLoading = false
		m.conversationsSettled = true
		m.clampCursors()
		return m, nil

	case peopleLoadedMsg:
		if msg.generation != m.generation {
			debug.Logf("dropping stale people result (generation %d, current %d)", msg.generation, m.generation)
			return m, nil
		}
		m.people = msg.items
		m.peopleLoading = false
		m.clampCursors()
		return m, nil

	case clearStatusMsg:
		m.statusNote = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.handleLoginKey(msg)
	case screenConversationDetail, screenPersonDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleDashboardKey(msg)
	}
}

func (m *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loggingIn {
		return m, nil
	}
	switch msg.String() {
	case "tab", "down":
		return m, m.login.cycleFocus(1)
	case "shift+tab", "up":
		return m, m.login.cycleFocus(-1)
	case "enter":
		if !m.login.complete() {
			return m, m.login.cycleFocus(1)
		}
		email, password := m.login.values()
		m.loggingIn = true
		m.loginErr = ""
		return m, tea.Batch(m.spinner.Tick, loginCmd(m.client, m.store, email, password))
	default:
		return m, m.login.update(msg)
	}
}

func (m *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.focus == FocusConversations {
			m.focus = FocusPeople
		} else {
			m.focus = FocusConversations
		}
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "home", "g":
		m.setCursor(0)
	case "end", "G":
		m.setCursor(m.focusedLen() - 1)
	case "enter":
		return m, m.openDetail()
	case "r":
		if m.sessionReady {
			return m, m.startFetches()
		}
	}
	return m, nil
}

func (m *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "backspace":
		m.screen = screenDashboard
		m.detailID = ""
		return m, nil
	case "y":
		if m.detailID != "" {
			if err := clipboard.WriteAll(m.detailID); err != nil {
				debug.Logf("clipboard copy failed: %v", err)
				return m, nil
			}
			m.statusNote = "Copied " + m.detailID
			return m, scheduleClearStatus()
		}
		return m, nil
	case "home":
		m.viewport.GotoTop()
		return m, nil
	case "end":
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// startFetches dispatches both collection fetches concurrently under a fresh
// generation. The two are independent: neither waits for the other.
func (m *App) startFetches() tea.Cmd {
	m.generation++
	m.conversationsLoading = true
	m.peopleLoading = true
	return tea.Batch(
		m.spinner.Tick,
		fetchConversationsCmd(m.client, m.conversationLimit, m.generation),
		fetchPeopleCmd(m.client, m.peopleLimit, m.generation),
	)
}

func (m *App) anyLoading() bool {
	return m.loggingIn || m.pageLoading() || m.conversationsLoading || m.peopleLoading
}

func (m *App) focusedLen() int {
	if m.focus == FocusPeople {
		return len(m.people)
	}
	return len(m.conversations)
}

func (m *App) moveCursor(delta int) {
	if m.focus == FocusPeople {
		m.peopleCursor += delta
	} else {
		m.convCursor += delta
	}
	m.clampCursors()
}

func (m *App) setCursor(idx int) {
	if m.focus == FocusPeople {
		m.peopleCursor = idx
	} else {
		m.convCursor = idx
	}
	m.clampCursors()
}

func (m *App) clampCursors() {
	m.convCursor = clampDimension(m.convCursor, 0, maxIndex(len(m.conversations)))
	m.peopleCursor = clampDimension(m.peopleCursor, 0, maxIndex(len(m.people)))
}

func (m *App) openDetail() tea.Cmd {
	if m.focus == FocusPeople {
		if len(m.people) == 0 {
			return nil
		}
		m.detailID = m.people[m.peopleCursor].ID
		m.screen = screenPersonDetail
	} else {
		if len(m.conversations) == 0 {
			return nil
		}
		m.detailID = m.conversations[m.convCursor].ID
		m.screen = screenConversationDetail
	}
	m.updateViewportContent()
	m.viewport.GotoTop()
	return nil
}

func clampDimension(value, minValue, maxValue int) int {
	if maxValue < minValue {
		maxValue = minValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func maxIndex(length int) int {
	if length == 0 {
		return 0
	}
	return length - 1
}
