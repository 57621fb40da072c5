package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ReplyAttached = "attached"
	ReplyRejected = "rejected"
	ReplyNoTarget = "no_target"
)

var (
	UnreadNotifications = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "notifications_unread",
		Help: "Current number of unread notifications in the panel.",
	})

	MarkAllReadTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_mark_all_read_total",
		Help: "Total number of mark-all-as-read actions.",
	})

	RepliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_replies_total",
		Help: "Reply submissions by outcome.",
	}, []string{"result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_http_requests_total",
		Help: "HTTP requests served by the notifications panel.",
	}, []string{"method", "route", "status"})
)

// Recorder is what the panel reports state transitions to
type Recorder interface {
	SetUnread(n int)
	MarkAllRead()
	Reply(result string)
}

type PrometheusRecorder struct{}

func (PrometheusRecorder) SetUnread(n int) {
	UnreadNotifications.Set(float64(n))
}

func (PrometheusRecorder) MarkAllRead() {
	MarkAllReadTotal.Inc()
}

func (PrometheusRecorder) Reply(result string) {
	RepliesTotal.WithLabelValues(result).Inc()
}

// Nop discards everything
type Nop struct{}

func (Nop) SetUnread(int) {}
func (Nop) MarkAllRead() {}
func (Nop) Reply(string) {}
