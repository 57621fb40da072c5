package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anonto42/nano-midea/notifications/internal/assets"
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/panel"
)

func seedView(session models.ReplySession, mutate func([]models.Notification)) panel.View {
	records := models.SeedNotifications()
	if mutate != nil {
		mutate(records)
	}
	return panel.Project(records, session, assets.BaseURLResolver{})
}

func renderHTML(t *testing.T, v panel.View) string {
	t.Helper()
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PanelTemplate, v, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestHTMLRendersPanel(t *testing.T) {
	out := renderHTML(t, seedView(models.ReplySession{}, nil))

	for _, want := range []string{
		"<h1>Notifications</h1>",
		`data-unread-count="3"`,
		"Mark all as read",
		"Mark Webber",
		"reacted to your recent post",
		`<span class="target post">My first tournament today!</span>`,
		`<span class="target group">Chess Club</span>`,
		`src="/images/avatar-angela-gray.webp"`,
		`action="/notifications/4/reply"`,
		`action="/notifications/5/reply"`,
		`alt="Chess preview"`,
		"5 days ago",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if got := strings.Count(out, `class="dot"`); got != 3 {
		t.Errorf("unread markers: got %d want 3", got)
	}
	if strings.Contains(out, "Write a reply...") {
		t.Error("no reply box should be open")
	}
}

func TestHTMLRendersReplyState(t *testing.T) {
	id := 4
	session := models.ReplySession{ActiveNotificationID: &id, DraftText: "<b>hi</b>"}
	out := renderHTML(t, seedView(session, func(records []models.Notification) {
		records[4].ReplyText = models.StringPtr("Nice shot")
	}))

	if got := strings.Count(out, "Write a reply..."); got != 1 {
		t.Fatalf("reply boxes: got %d want 1", got)
	}
	if !strings.Contains(out, `value="&lt;b&gt;hi&lt;/b&gt;"`) {
		t.Error("draft should be escaped into the input")
	}
	if !strings.Contains(out, `<div class="reply">Nice shot</div>`) {
		t.Error("reply block missing")
	}
	if !strings.Contains(out, `action="/reply"`) || !strings.Contains(out, "Send") {
		t.Error("submit control missing")
	}
}

func TestTerminalRendersPanel(t *testing.T) {
	out := Terminal(seedView(models.ReplySession{}, nil), TerminalOptions{Cursor: 1, Help: true})

	for _, want := range []string{
		"Notifications",
		"Angela Gray",
		"followed you",
		"Chess Club",
		"5 end-game strategies to increase your win rate",
		"[image /images/image-chess.webp]",
		"mark all as read",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "●"); got != 3 {
		t.Errorf("unread markers: got %d want 3", got)
	}
	if got := strings.Count(out, cursorMark); got != 1 {
		t.Errorf("cursor marks: got %d want 1", got)
	}
}

func TestTerminalRendersReplyState(t *testing.T) {
	id := 5
	session := models.ReplySession{ActiveNotificationID: &id, DraftText: "draft text"}
	v := seedView(session, func(records []models.Notification) {
		records[3].ReplyText = models.StringPtr("Thanks!")
	})

	out := Terminal(v, TerminalOptions{Cursor: -1})
	if !strings.Contains(out, "> draft text") {
		t.Error("fallback input line missing")
	}
	if !strings.Contains(out, "Thanks!") {
		t.Error("reply block missing")
	}

	out = Terminal(v, TerminalOptions{Cursor: -1, Input: "INPUT-VIEW"})
	if !strings.Contains(out, "INPUT-VIEW") || strings.Contains(out, "> draft text") {
		t.Error("rendered input should replace the fallback line")
	}
}

func TestTerminalEmpty(t *testing.T) {
	out := Terminal(panel.Project(nil, models.ReplySession{}, assets.BaseURLResolver{}), TerminalOptions{})
	if !strings.Contains(out, "No notifications") {
		t.Fatalf("unexpected output: %q", out)
	}
}
