package chatview

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/chat"
	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/models"
)

type historyMsg struct {
	msgs []models.ChatMessage
	err  error
}

type replyMsg struct {
	reply models.ChatMessage
	err   error
}

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	coachStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const inputHeight = 3

// Model is the coach chat: a scrolling transcript over a single-line composer
type Model struct {
	session   *chat.Session
	transport chat.Transport
	renderer  *chat.Renderer
	viewport  viewport.Model
	input     textarea.Model
	spinner   spinner.Model
}

func New(transport chat.Transport, sessionID string, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask your coach... (Enter to send)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		session:   chat.NewSession(sessionID),
		transport: transport,
		viewport:  viewport.New(80, 20),
		input:     ta,
		spinner:   sp,
	}
	m.SetSize(width, height)
	return m
}

func (m *Model) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.viewport.Width = width
	m.viewport.Height = max(height-inputHeight-2, 3)
	m.input.SetWidth(width)
	m.input.SetHeight(inputHeight)
	if m.renderer == nil || m.renderer.Width() != width {
		m.renderer = chat.NewRenderer(width)
	}
	m.refresh()
}

func (m Model) Session() *chat.Session { return m.session }

// Load fetches the transcript. Sends are blocked until it arrives.
func (m *Model) Load() tea.Cmd {
	m.session.StartLoad()
	m.refresh()
	transport, id := m.transport, m.session.ID()
	fetch := func() tea.Msg {
		msgs, err := transport.History(context.Background(), id)
		return historyMsg{msgs: msgs, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.session.ApplyHistory(msg.msgs, msg.err)
		m.refresh()
		return m, nil

	case replyMsg:
		m.session.Resolve(msg.reply, msg.err)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.send()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (Model, tea.Cmd) {
	content, ok := m.session.Begin(m.input.Value())
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.refresh()

	transport, id := m.transport, m.session.ID()
	request := func() tea.Msg {
		reply, err := transport.Chat(context.Background(), id, content)
		return replyMsg{reply: reply, err: err}
	}
	return m, tea.Batch(request, m.spinner.Tick)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, e := range m.session.Entries() {
		b.WriteString(m.renderEntry(e))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderEntry(e chat.Entry) string {
	label := coachStyle.Render("Coach")
	if e.Role == models.RoleUser {
		label = userStyle.Render("You")
	}
	if e.CreatedAt != nil {
		label += " " + timeStyle.Render(e.CreatedAt.Local().Format(constants.DateTimeFormat))
	}

	body := m.renderer.Content(e)
	switch e.Status {
	case chat.StatusLocal:
		body = noticeStyle.Render(body)
	case chat.StatusFailed:
		body += " " + failedStyle.Render("(not sent)")
	}
	return label + "\n" + body
}

func (m Model) View() string {
	status := ""
	if m.session.Loading() {
		status = m.spinner.View() + " GentleCoach is thinking..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), status, m.input.View())
}
