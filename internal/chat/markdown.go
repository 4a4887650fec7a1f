package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
)

const defaultWrap = 80

// Renderer turns assistant replies into terminal markdown. User and local
// entries are shown as typed.
type Renderer struct {
	md    *glamour.TermRenderer
	width int
}

// NewRenderer builds a renderer wrapping at width columns; width <= 0 uses 80
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = defaultWrap
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("Markdown renderer unavailable, showing raw text", "error", err)
		md = nil
	}
	return &Renderer{md: md, width: width}
}

func (r *Renderer) Width() int { return r.width }

// Markdown renders s, falling back to the raw text on failure
func (r *Renderer) Markdown(s string) string {
	if r == nil || r.md == nil {
		return s
	}
	out, err := r.md.Render(s)
	if err != nil {
		logger.Debug("Markdown render failed", "error", err)
		return s
	}
	return strings.TrimRight(out, "\n")
}

// Content renders an entry body. Only committed assistant replies are markdown.
func (r *Renderer) Content(e Entry) string {
	if e.Role == models.RoleAssistant && e.Status == StatusCommitted {
		return r.Markdown(e.Content)
	}
	return e.Content
}
