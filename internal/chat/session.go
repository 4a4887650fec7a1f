package chat

import (
	"context"
	"strings"
	"time"

	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
)

// Status tracks where a transcript entry stands relative to the server
type Status int

const (
	// StatusLocal entries are greetings and notices, never persisted
	StatusLocal Status = iota
	StatusPending
	StatusCommitted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLocal:
		return "local"
	case StatusPending:
		return "pending"
	case StatusCommitted:
		return "committed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Entry struct {
	models.ChatMessage
	Status Status
}

// Transport is the backend surface the session needs
type Transport interface {
	Chat(ctx context.Context, sessionID, content string) (models.ChatMessage, error)
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

// Session is an append-only transcript with a single in-flight send
type Session struct {
	id      string
	entries []Entry
	loading bool
	pending int
	now     func() time.Time
}

func NewSession(id string) *Session {
	return &Session{id: id, pending: -1, now: time.Now}
}

func (s *Session) ID() string       { return s.id }
func (s *Session) Loading() bool    { return s.loading }
func (s *Session) Entries() []Entry { return append([]Entry(nil), s.entries...) }

// StartLoad marks a history fetch in flight; sends are blocked until ApplyHistory
func (s *Session) StartLoad() {
	s.loading = true
}

// ApplyHistory replaces the transcript with the server's. An error shows
// the canned history notice; an empty history shows the greeting.
func (s *Session) ApplyHistory(msgs []models.ChatMessage, err error) {
	s.loading = false
	s.pending = -1
	switch {
	case err != nil:
		logger.Warn("Failed to load chat history", "session", s.id, "error", err)
		s.entries = []Entry{s.local(constants.ChatHistoryError)}
	case len(msgs) == 0:
		s.entries = []Entry{s.local(constants.ChatGreeting)}
	default:
		s.entries = make([]Entry, 0, len(msgs))
		for _, m := range msgs {
			s.entries = append(s.entries, Entry{ChatMessage: m, Status: StatusCommitted})
		}
	}
}

// Begin appends the user's message optimistically and marks the session loading.
// It returns false without changes while a send is in flight or the input is blank.
func (s *Session) Begin(input string) (string, bool) {
	content := strings.TrimSpace(input)
	if s.loading || content == "" {
		return "", false
	}
	now := s.now()
	s.entries = append(s.entries, Entry{
		ChatMessage: models.ChatMessage{Role: models.RoleUser, Content: content, CreatedAt: &now},
		Status:      StatusPending,
	})
	s.pending = len(s.entries) - 1
	s.loading = true
	return content, true
}

// Resolve merges the server reply. Loading is always cleared.
func (s *Session) Resolve(reply models.ChatMessage, err error) {
	defer func() {
		s.loading = false
		s.pending = -1
	}()

	if err != nil {
		logger.Warn("Chat request failed", "session", s.id, "error", err)
		s.mark(StatusFailed)
		s.entries = append(s.entries, s.local(constants.ChatReplyFailure))
		return
	}

	s.mark(StatusCommitted)
	if reply.Role == "" {
		reply.Role = models.RoleAssistant
	}
	if reply.CreatedAt == nil {
		now := s.now()
		reply.CreatedAt = &now
	}
	s.entries = append(s.entries, Entry{ChatMessage: reply, Status: StatusCommitted})
}

// Load fetches history synchronously
func (s *Session) Load(ctx context.Context, t Transport) {
	s.StartLoad()
	msgs, err := t.History(ctx, s.id)
	s.ApplyHistory(msgs, err)
}

// Send runs Begin, the backend call and Resolve. It reports whether a request was made.
func (s *Session) Send(ctx context.Context, t Transport, input string) bool {
	content, ok := s.Begin(input)
	if !ok {
		return false
	}
	reply, err := t.Chat(ctx, s.id, content)
	s.Resolve(reply, err)
	return true
}

func (s *Session) mark(status Status) {
	if s.pending >= 0 && s.pending < len(s.entries) {
		s.entries[s.pending].Status = status
	}
}

func (s *Session) local(content string) Entry {
	return Entry{
		ChatMessage: models.ChatMessage{Role: models.RoleAssistant, Content: content},
		Status:      StatusLocal,
	}
}
