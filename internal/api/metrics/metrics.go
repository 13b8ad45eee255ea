// Package metrics defines the custom Prometheus metrics for the auction
// gateway. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level request metrics come from echoprometheus instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auction_gateway"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"; backend rejections, transport errors
//     and snapshot persistence failures all count as "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts by outcome.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// RedirectsTotal counts role-router redirects by the rule that fired.
// Label:
//   - rule: rule name from the role router's decision list
var RedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_redirects_total",
		Help:      "Total number of role-router redirects, by matched rule.",
	},
	[]string{"rule"},
)

// BackendRequestDuration observes the latency of outbound calls to the
// marketplace backend.
// Label:
//   - path: the backend endpoint path, e.g. "/api/user/login"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound marketplace backend requests, by path.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path"},
)

// PaymentsTotal counts bid settlement attempts by outcome.
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bid_payments_total",
		Help:      "Total number of bid settlement attempts, by result.",
	},
	[]string{"result"},
)
