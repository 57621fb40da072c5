package models

// TargetKind tells a post target apart from a group target
type TargetKind string

const (
	TargetPost  TargetKind = "post"
	TargetGroup TargetKind = "group"
)

// Notification represents one entry in the notifications panel (in memory)
type Notification struct {
	ID              int         `json:"id"`
	ActorName       string      `json:"actor_name" validate:"required"`
	AvatarRef       string      `json:"avatar_ref"`
	Action          string      `json:"action" validate:"required"`
	Target          *string     `json:"target,omitempty"`
	TargetKind      *TargetKind `json:"target_kind,omitempty" validate:"omitempty,oneof=post group"`
	Unread          bool        `json:"unread"`
	OccurredAt      string      `json:"occurred_at"` // relative label, e.g. "5m ago"
	MessageBody     *string     `json:"message_body,omitempty"`
	ImagePreviewRef *string     `json:"image_preview_ref,omitempty"`
	ReplyText       *string     `json:"reply_text,omitempty"`
}

// Repliable reports whether the notification can open a reply box
func (n Notification) Repliable() bool {
	return n.MessageBody != nil || n.ImagePreviewRef != nil
}

// Clone returns a deep copy so the caller never shares optional fields with the store
func (n Notification) Clone() Notification {
	c := n
	c.Target = cloneString(n.Target)
	c.MessageBody = cloneString(n.MessageBody)
	c.ImagePreviewRef = cloneString(n.ImagePreviewRef)
	c.ReplyText = cloneString(n.ReplyText)
	if n.TargetKind != nil {
		k := *n.TargetKind
		c.TargetKind = &k
	}
	return c
}

// ReplySession tracks which notification has its reply box open and the draft typed so far.
// A nil ActiveNotificationID means no reply box is open.
type ReplySession struct {
	ActiveNotificationID *int   `json:"active_notification_id,omitempty"`
	DraftText            string `json:"draft_text"`
}

// IsOpenFor reports whether the reply box of the given notification is open
func (s ReplySession) IsOpenFor(id int) bool {
	return s.ActiveNotificationID != nil && *s.ActiveNotificationID == id
}

// Clone returns a copy that does not share the active id pointer
func (s ReplySession) Clone() ReplySession {
	c := ReplySession{DraftText: s.DraftText}
	if s.ActiveNotificationID != nil {
		id := *s.ActiveNotificationID
		c.ActiveNotificationID = &id
	}
	return c
}

// ReplyDraftRequest defines the request body for replacing the reply draft
type ReplyDraftRequest struct {
	Text string `json:"text" form:"text" validate:"max=2000"`
}

// StringPtr is a small helper for building optional fields
func StringPtr(s string) *string {
	return &s
}

// KindPtr is StringPtr for TargetKind
func KindPtr(k TargetKind) *TargetKind {
	return &k
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
