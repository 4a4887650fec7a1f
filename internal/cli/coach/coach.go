package coach

import (
	"context"
	"fmt"

	"github.com/julianstephens/gentlegains/internal/chat"
	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/models"
)

type SendCmd struct {
	Message string `arg:"" help:"Message for the coach."`
	Raw     bool   `help:"Print the reply without markdown rendering."`
}

func (c *SendCmd) Run(ctx *cli.Context) error {
	session := chat.NewSession(ctx.Config.SessionID)
	if !session.Send(context.Background(), ctx.API, c.Message) {
		return fmt.Errorf("message is empty")
	}

	entries := session.Entries()
	reply := entries[len(entries)-1]
	if reply.Status == chat.StatusLocal {
		return fmt.Errorf("%s", reply.Content)
	}
	ctx.Println(render(c.Raw).Content(reply))
	return nil
}

type HistoryCmd struct {
	Raw bool `help:"Print replies without markdown rendering."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	session := chat.NewSession(ctx.Config.SessionID)
	session.Load(context.Background(), ctx.API)

	r := render(c.Raw)
	for _, e := range session.Entries() {
		ctx.Printf("%s\n%s\n\n", speaker(e), r.Content(e))
	}
	return nil
}

func render(raw bool) *chat.Renderer {
	if raw {
		return nil
	}
	return chat.NewRenderer(0)
}

func speaker(e chat.Entry) string {
	label := "Coach"
	if e.Role == models.RoleUser {
		label = "You"
	}
	if e.CreatedAt != nil {
		label += " · " + cli.FormatTime(*e.CreatedAt)
	}
	return label + ":"
}
