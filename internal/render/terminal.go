package render

import (
	"fmt"
	"strings"

	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/charmbracelet/lipgloss"
)

var (
	navyColor  = lipgloss.Color("17")
	grayColor  = lipgloss.Color("245")
	redColor   = lipgloss.Color("203")
	unreadBg   = lipgloss.Color("189")
	cursorMark = "›"

	titleStyle   = lipgloss.NewStyle().Bold(true)
	badgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(navyColor).Padding(0, 1)
	actorStyle   = lipgloss.NewStyle().Bold(true)
	actionStyle  = lipgloss.NewStyle().Foreground(grayColor)
	postStyle    = lipgloss.NewStyle().Bold(true).Foreground(grayColor)
	groupStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dotStyle     = lipgloss.NewStyle().Foreground(redColor)
	timeStyle    = lipgloss.NewStyle().Foreground(grayColor).Faint(true)
	messageStyle = lipgloss.NewStyle().Foreground(grayColor).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	replyStyle   = lipgloss.NewStyle().Foreground(grayColor).Background(unreadBg).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(grayColor).Faint(true)
)

// TerminalOptions carries the interactive bits the projection does not know about
type TerminalOptions struct {
	Cursor int
	// Input is the already rendered reply input, drawn under the item whose reply box is open
	Input string
	Width int
	Help  bool
}

// Terminal draws the panel for a terminal
func Terminal(v panel.View, opts TerminalOptions) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString(" ")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("%d", v.UnreadCount)))
	b.WriteString("\n\n")

	if len(v.Items) == 0 {
		b.WriteString(timeStyle.Render("No notifications"))
		b.WriteString("\n")
	}

	for i, item := range v.Items {
		b.WriteString(terminalItem(item, i == opts.Cursor, opts))
		b.WriteString("\n")
	}

	if opts.Help {
		b.WriteString(helpStyle.Render("↑/↓ move • enter reply • m mark all as read • esc leave input • q quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func terminalItem(item panel.ItemView, selected bool, opts TerminalOptions) string {
	gutter := "  "
	if selected {
		gutter = cursorMark + " "
	}

	parts := []string{actorStyle.Render(item.ActorName), actionStyle.Render(item.Action)}
	if item.HasTarget {
		style := postStyle
		if item.TargetEmphasized {
			style = groupStyle
		}
		parts = append(parts, style.Render(item.Target))
	}
	if item.Unread {
		parts = append(parts, dotStyle.Render("●"))
	}
	if item.HasImagePreview {
		parts = append(parts, timeStyle.Render("[image "+item.ImagePreviewURL+"]"))
	}

	line := strings.Join(parts, " ")
	if item.Unread {
		line = lipgloss.NewStyle().Background(unreadBg).Render(line)
	}

	lines := []string{gutter + line, "  " + timeStyle.Render(item.OccurredAt)}

	if item.HasMessage {
		style := messageStyle
		if opts.Width > 8 {
			style = style.Width(opts.Width - 6)
		}
		lines = append(lines, indent(style.Render(item.MessageBody)))
	}
	if item.ReplyOpen {
		input := opts.Input
		if input == "" {
			input = "> " + item.Draft
		}
		lines = append(lines, "  "+input)
	}
	if item.HasReply {
		lines = append(lines, "  "+replyStyle.Render(item.Reply))
	}
	return strings.Join(lines, "\n")
}

func indent(s string) string {
	rows := strings.Split(s, "\n")
	for i, r := range rows {
		rows[i] = "  " + r
	}
	return strings.Join(rows, "\n")
}
