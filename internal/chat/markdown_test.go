package chat

import (
	"strings"
	"testing"

	"github.com/julianstephens/gentlegains/internal/models"
)

func TestRendererContent(t *testing.T) {
	r := NewRenderer(0)
	if r.Width() != defaultWrap {
		t.Errorf("Width() = %d, want %d", r.Width(), defaultWrap)
	}

	user := Entry{ChatMessage: models.ChatMessage{Role: models.RoleUser, Content: "**raw**"}, Status: StatusCommitted}
	if got := r.Content(user); got != "**raw**" {
		t.Errorf("user content rendered: %q", got)
	}

	local := Entry{ChatMessage: models.ChatMessage{Role: models.RoleAssistant, Content: "**notice**"}, Status: StatusLocal}
	if got := r.Content(local); got != "**notice**" {
		t.Errorf("local content rendered: %q", got)
	}

	reply := Entry{ChatMessage: models.ChatMessage{Role: models.RoleAssistant, Content: "**Great** job"}, Status: StatusCommitted}
	got := r.Content(reply)
	if !strings.Contains(got, "Great") || !strings.Contains(got, "job") {
		t.Errorf("assistant text lost: %q", got)
	}
}

func TestNilRendererPassesThrough(t *testing.T) {
	var r *Renderer
	if got := r.Markdown("# hi"); got != "# hi" {
		t.Errorf("Markdown() = %q", got)
	}
}
