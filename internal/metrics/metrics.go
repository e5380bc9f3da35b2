package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total successful user registrations",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"result"}, // ok|failed
	)

	ContactMessagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total persisted contact messages",
		},
	)

	MailFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_failures_total",
			Help: "Total failed outbound mail deliveries",
		},
		[]string{"kind"}, // welcome|contact
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(ContactMessagesTotal)
	prometheus.MustRegister(MailFailuresTotal)
}
