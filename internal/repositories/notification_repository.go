package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/validators"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrDuplicateNotificationID = errors.New("duplicate notification id")
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	List() []models.Notification
	GetByID(id int) (models.Notification, error)
	Len() int
	UnreadCount() int
	MarkAllAsRead()
	AttachReply(id int, text string) bool
}

// memoryNotificationRepository keeps records in insertion order.
// It is not safe for concurrent use.
type memoryNotificationRepository struct {
	notifications []models.Notification
	index         map[int]int
}

// NewMemoryNotificationRepository validates the records and stores a private copy of them
func NewMemoryNotificationRepository(records []models.Notification) (NotificationRepository, error) {
	v := validators.NewValidator()
	r := &memoryNotificationRepository{
		notifications: make([]models.Notification, 0, len(records)),
		index:         make(map[int]int, len(records)),
	}
	for _, n := range records {
		if err := v.Struct(n); err != nil {
			return nil, fmt.Errorf("invalid notification %d: %w", n.ID, err)
		}
		if _, ok := r.index[n.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNotificationID, n.ID)
		}
		r.index[n.ID] = len(r.notifications)
		r.notifications = append(r.notifications, n.Clone())
	}
	return r, nil
}

func (r *memoryNotificationRepository) List() []models.Notification {
	out := make([]models.Notification, len(r.notifications))
	for i, n := range r.notifications {
		out[i] = n.Clone()
	}
	return out
}

func (r *memoryNotificationRepository) GetByID(id int) (models.Notification, error) {
	i, ok := r.index[id]
	if !ok {
		return models.Notification{}, ErrNotificationNotFound
	}
	return r.notifications[i].Clone(), nil
}

func (r *memoryNotificationRepository) Len() int {
	return len(r.notifications)
}

func (r *memoryNotificationRepository) UnreadCount() int {
	count := 0
	for _, n := range r.notifications {
		if n.Unread {
			count++
		}
	}
	return count
}

func (r *memoryNotificationRepository) MarkAllAsRead() {
	for i := range r.notifications {
		r.notifications[i].Unread = false
	}
}

// AttachReply stores the trimmed text as the reply of the notification.
// Unknown ids and blank text leave the store untouched and return false.
func (r *memoryNotificationRepository) AttachReply(id int, text string) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	r.notifications[i].ReplyText = &trimmed
	return true
}
