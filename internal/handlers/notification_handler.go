package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification panel HTTP requests
type NotificationHandler struct {
	panel *panel.Panel
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(p *panel.Panel) *NotificationHandler {
	return &NotificationHandler{panel: p}
}

// RegisterPageRoutes registers the HTML page and its form actions
func (h *NotificationHandler) RegisterPageRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.POST("/read-all", h.PageMarkAllAsRead)
	e.POST("/notifications/:id/reply", h.PageOpenReply)
	e.POST("/reply", h.PageSubmitReply)
}

// RegisterNotificationRoutes registers the JSON notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.POST("/notifications/:id/reply/open", h.OpenReply)
	g.GET("/notifications/reply/session", h.GetReplySession)
	g.PUT("/notifications/reply/draft", h.SetReplyDraft)
	g.POST("/notifications/reply/submit", h.SubmitReply)
}

// Page renders the panel
func (h *NotificationHandler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, render.PanelTemplate, h.panel.View())
}

// PageMarkAllAsRead marks everything read and goes back to the panel
func (h *NotificationHandler) PageMarkAllAsRead(c echo.Context) error {
	h.panel.MarkAllRead()
	return c.Redirect(http.StatusSeeOther, "/")
}

// PageOpenReply opens the reply box of a notification
func (h *NotificationHandler) PageOpenReply(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return err
	}
	if !h.panel.OpenReply(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// PageSubmitReply takes the draft from the form and submits it.
// A blank draft keeps the reply box open.
func (h *NotificationHandler) PageSubmitReply(c echo.Context) error {
	var req models.ReplyDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.panel.SetDraftText(req.Text)
	h.panel.SubmitReply()
	return c.Redirect(http.StatusSeeOther, "/")
}

// GetNotifications returns the projected panel
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": h.panel.View()})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": h.panel.UnreadCount()}})
}

// MarkAllAsRead marks all notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	h.panel.MarkAllRead()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": h.panel.UnreadCount()}})
}

// OpenReply opens the reply box of a notification, keeping the current draft
func (h *NotificationHandler) OpenReply(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return err
	}
	if !h.panel.OpenReply(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": h.panel.Session()})
}

// GetReplySession returns the reply session
func (h *NotificationHandler) GetReplySession(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": h.panel.Session()})
}

// SetReplyDraft replaces the draft text verbatim
func (h *NotificationHandler) SetReplyDraft(c echo.Context) error {
	var req models.ReplyDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.panel.SetDraftText(req.Text)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": h.panel.Session()})
}

// SubmitReply attaches the draft to the notification whose reply box is open
func (h *NotificationHandler) SubmitReply(c echo.Context) error {
	attached := h.panel.SubmitReply()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"attached": attached,
			"session":  h.panel.Session(),
		},
	})
}

func parseNotificationID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}
	return id, nil
}
