package panel

import (
	"log/slog"
	"sync"

	"github.com/anonto42/nano-midea/notifications/internal/assets"
	"github.com/anonto42/nano-midea/notifications/internal/metrics"
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
)

// Panel owns the notification store and the reply session of one view.
// Every operation runs to completion under a single lock, so callers observe
// the same sequence of states a single user clicking through the page would.
type Panel struct {
	mu       sync.Mutex
	repo     repositories.NotificationRepository
	session  models.ReplySession
	resolver assets.Resolver
	recorder metrics.Recorder
	logger   *slog.Logger
}

// New creates a panel over repo. Nil collaborators fall back to no-op defaults.
func New(repo repositories.NotificationRepository, resolver assets.Resolver, recorder metrics.Recorder, logger *slog.Logger) *Panel {
	if resolver == nil {
		resolver = assets.BaseURLResolver{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Panel{
		repo:     repo,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
	}
	p.recorder.SetUnread(repo.UnreadCount())
	return p
}

// MarkAllRead clears the unread flag on every notification
func (p *Panel) MarkAllRead() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.repo.MarkAllAsRead()
	p.recorder.MarkAllRead()
	p.recorder.SetUnread(0)
	p.logger.Debug("marked all notifications as read")
}

// AttachReply sets the trimmed text as the reply of notification id and closes the reply session.
// An unknown id or blank text changes nothing.
func (p *Panel) AttachReply(id int, text string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attachReply(id, text)
}

func (p *Panel) attachReply(id int, text string) bool {
	if !p.repo.AttachReply(id, text) {
		p.recorder.Reply(metrics.ReplyRejected)
		return false
	}
	p.session = models.ReplySession{}
	p.recorder.Reply(metrics.ReplyAttached)
	p.logger.Debug("reply attached", "notification_id", id)
	return true
}

// OpenReply makes id the notification with the open reply box.
// The draft is kept, so text typed under another notification carries over.
// Ids missing from the store are ignored.
func (p *Panel) OpenReply(id int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.repo.GetByID(id); err != nil {
		p.logger.Debug("open reply ignored", "notification_id", id, "error", err)
		return false
	}
	p.session.ActiveNotificationID = &id
	return true
}

// SetDraftText replaces the draft verbatim
func (p *Panel) SetDraftText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session.DraftText = text
}

// SubmitReply attaches the current draft to the active notification.
// Without an active notification nothing happens.
func (p *Panel) SubmitReply() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session.ActiveNotificationID == nil {
		p.recorder.Reply(metrics.ReplyNoTarget)
		return false
	}
	return p.attachReply(*p.session.ActiveNotificationID, p.session.DraftText)
}

func (p *Panel) Session() models.ReplySession {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.Clone()
}

func (p *Panel) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.repo.UnreadCount()
}

// Records returns a copy of the notifications in store order
func (p *Panel) Records() []models.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.repo.List()
}

// View projects the current state for rendering
func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Project(p.repo.List(), p.session, p.resolver)
}
