package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

const sidebarWidth = 25

// Model represents the Bubble Tea model for the blackjack table
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog      []string
	actionResult chan ActionResult
	quitSignal   chan bool
	done         chan struct{}
	doneOnce     sync.Once
	quitting     bool
	focusedPane  int // 0 = log, 1 = input

	// Sidebar
	cash   game.Money
	bet    game.Money
	round  int
	prompt string

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// ActionResult represents the result of a user action
type ActionResult struct {
	Action   string
	Args     []string
	Continue bool
	Error    error
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// logMsg appends lines to the game log
type logMsg struct {
	lines []string
	clear bool
}

// statusMsg updates the sidebar
type statusMsg struct {
	cash  game.Money
	bet   game.Money
	round int
}

// promptMsg sets the question shown above the input
type promptMsg struct {
	text        string
	placeholder string
}

// NewModel creates a new TUI model
func NewModel(logger *log.Logger) *Model {
	return NewModelWithOptions(logger, false)
}

// NewModelWithOptions creates a new TUI model with test mode option
func NewModelWithOptions(logger *log.Logger, testMode bool) *Model {
	// Will be properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = InputPromptStyle
	ti.TextStyle = InputTextStyle
	ti.Prompt = "> "

	// Injected actions queue up ahead of the prompts that consume them
	buffer := 1
	if testMode {
		buffer = 64
	}

	return &Model{
		logger:       logger.WithPrefix("tui"),
		logViewport:  vp,
		actionInput:  ti,
		gameLog:      []string{},
		actionResult: make(chan ActionResult, buffer),
		quitSignal:   make(chan bool, 1),
		done:         make(chan struct{}),
		focusedPane:  1, // Start with input focused
		testMode:     testMode,
		capturedLog:  []string{},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

// listenForQuit returns a command that listens for quit signals
func (m *Model) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		m.markDone()
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case logMsg:
		if msg.clear {
			m.ClearLog()
		}
		for _, line := range msg.lines {
			m.AddLogEntry(line)
		}

	case statusMsg:
		m.cash, m.bet, m.round = msg.cash, msg.bet, msg.round

	case promptMsg:
		m.prompt = msg.text
		m.actionInput.Placeholder = msg.placeholder

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.markDone()
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.processAction(m.actionInput.Value())
				m.actionInput.SetValue("")
			}
		default:
			if m.focusedPane == 0 {
				m.scrollLog(msg.String())
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// scrollLog moves the log viewport for navigation keys
func (m *Model) scrollLog(key string) {
	vp := &m.logViewport
	switch key {
	case "up", "k":
		vp.ScrollUp(1)
	case "down", "j":
		vp.ScrollDown(1)
	case "pgup":
		vp.HalfPageUp()
	case "pgdown":
		vp.HalfPageDown()
	case "home":
		vp.GotoTop()
	case "end":
		vp.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(1)).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	paneHeight := max(m.height-actionHeight-4, 1) // borders of both rows

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(InactiveBorderColor).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(m.renderSidebarPane())

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	m.logViewport.SetContent(m.renderLogPane())

	// On first proper sizing, jump to the latest entries
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(0)).
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

func (m *Model) borderColor(pane int) lipgloss.Color {
	if m.focusedPane == pane {
		return ActiveBorderColor
	}
	return InactiveBorderColor
}

func (m *Model) renderLogPane() string {
	return strings.Join(m.gameLog, "\n")
}

func (m *Model) renderSidebarPane() string {
	var content strings.Builder

	content.WriteString(CashStyle.Render(fmt.Sprintf("Cash: %s", m.cash)))
	content.WriteString("\n")
	if m.bet > 0 {
		content.WriteString(CashStyle.Render(fmt.Sprintf("Bet:  %s", m.bet)))
		content.WriteString("\n")
	}
	if m.round > 0 {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Round %d", m.round)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("h hit  s stand\nd double\nr surrender\nq quit"))
	return content.String()
}

func (m *Model) renderActionPane() string {
	var content strings.Builder

	if m.prompt != "" {
		content.WriteString(PromptStyle.Render(m.prompt))
		content.WriteString("\n")
	}
	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// Prompt returns the question currently shown above the input
func (m *Model) Prompt() string {
	return m.prompt
}

// Status returns the sidebar values
func (m *Model) Status() (cash, bet game.Money, round int) {
	return m.cash, m.bet, m.round
}

// processAction splits typed input and hands it to the waiting game loop
func (m *Model) processAction(input string) {
	parts := strings.Fields(strings.ToLower(input))

	var action string
	var args []string
	if len(parts) > 0 {
		action = parts[0]
		args = parts[1:]
	}

	m.deliver(ActionResult{Action: action, Args: args, Continue: true})
}

// deliver hands a result to WaitForAction, dropping it if one is pending
func (m *Model) deliver(result ActionResult) {
	select {
	case m.actionResult <- result:
	default:
		m.logger.Debug("Dropped input, previous action still pending", "action", result.Action)
	}
}

// markDone releases every current and future WaitForAction
func (m *Model) markDone() {
	m.doneOnce.Do(func() { close(m.done) })
}

// WaitForAction waits for user input (for use by the game loop). Once the
// TUI is quitting it returns Continue false.
func (m *Model) WaitForAction() (string, []string, bool, error) {
	select {
	case result := <-m.actionResult:
		return result.Action, result.Args, result.Continue, result.Error
	case <-m.done:
		return "quit", nil, false, nil
	}
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *Model) SendQuitSignal() {
	select {
	case m.quitSignal <- true:
	default:
		// Channel is full, quit signal already sent
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectAction programmatically injects an action (test mode only)
func (m *Model) InjectAction(action string, args []string) error {
	if !m.testMode {
		return fmt.Errorf("action injection only available in test mode")
	}

	select {
	case m.actionResult <- ActionResult{Action: action, Args: args, Continue: true}:
		return nil
	default:
		return fmt.Errorf("action channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
