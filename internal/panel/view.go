package panel

import (
	"github.com/anonto42/nano-midea/notifications/internal/assets"
	"github.com/anonto42/nano-midea/notifications/internal/models"
)

const Title = "Notifications"

// View is everything a renderer needs to draw the panel
type View struct {
	Title       string     `json:"title"`
	UnreadCount int        `json:"unread_count"`
	Items       []ItemView `json:"items"`
}

// ItemView is one rendered notification
type ItemView struct {
	ID         int    `json:"id"`
	ActorName  string `json:"actor_name"`
	AvatarURL  string `json:"avatar_url"`
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"`
	Unread     bool   `json:"unread"`

	HasTarget        bool   `json:"has_target"`
	Target           string `json:"target,omitempty"`
	TargetEmphasized bool   `json:"target_emphasized"` // group targets

	HasMessage  bool   `json:"has_message"`
	MessageBody string `json:"message_body,omitempty"`

	HasImagePreview bool   `json:"has_image_preview"`
	ImagePreviewURL string `json:"image_preview_url,omitempty"`

	Repliable bool   `json:"repliable"`
	ReplyOpen bool   `json:"reply_open"`
	Draft     string `json:"draft,omitempty"`

	HasReply bool   `json:"has_reply"`
	Reply    string `json:"reply,omitempty"`
}

// Project derives the view from the records and the reply session.
// It keeps record order and has no side effects.
func Project(records []models.Notification, session models.ReplySession, resolver assets.Resolver) View {
	v := View{
		Title: Title,
		Items: make([]ItemView, 0, len(records)),
	}
	for _, n := range records {
		if n.Unread {
			v.UnreadCount++
		}
		v.Items = append(v.Items, projectItem(n, session, resolver))
	}
	return v
}

func projectItem(n models.Notification, session models.ReplySession, resolver assets.Resolver) ItemView {
	item := ItemView{
		ID:         n.ID,
		ActorName:  n.ActorName,
		AvatarURL:  resolver.Resolve(n.AvatarRef),
		Action:     n.Action,
		OccurredAt: n.OccurredAt,
		Unread:     n.Unread,
		Repliable:  n.Repliable(),
	}
	if n.Target != nil {
		item.HasTarget = true
		item.Target = *n.Target
		item.TargetEmphasized = n.TargetKind != nil && *n.TargetKind == models.TargetGroup
	}
	if n.MessageBody != nil {
		item.HasMessage = true
		item.MessageBody = *n.MessageBody
	}
	if n.ImagePreviewRef != nil {
		item.HasImagePreview = true
		item.ImagePreviewURL = resolver.Resolve(*n.ImagePreviewRef)
	}
	if session.IsOpenFor(n.ID) {
		item.ReplyOpen = true
		item.Draft = session.DraftText
	}
	if n.ReplyText != nil {
		item.HasReply = true
		item.Reply = *n.ReplyText
	}
	return item
}
