// Package metrics defines the custom Prometheus metrics of the reservation
// gateway. It is the single source of truth for metric names, labels and help
// strings.
//
// All metrics register with the default registry on package init through
// promauto; the /metrics endpoint exposes them next to the HTTP metrics of
// echoprometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reservas"

// ── Auth ─────────────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardRedirectsTotal counts guarded requests that were redirected.
// Label:
//   - outcome: "redirect_login" or "redirect_home"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of guarded requests redirected away from the requested view.",
	},
	[]string{"outcome"},
)

// ── Backend ──────────────────────────────────────────────────────────────────

// BackendRequestDuration measures calls to the reservation REST backend.
// Labels:
//   - op: method and path template (e.g. "GET /espacos")
//   - status: HTTP status, or "0" when no response was received
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of calls to the reservation backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "status"},
)

// ── Reservation form ─────────────────────────────────────────────────────────

// SubmissionsTotal counts reservation submissions that reached the backend.
// Labels:
//   - mode: "create" or "edit"
//   - result: "success" or "failure"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of reservation submissions sent to the backend.",
	},
	[]string{"mode", "result"},
)

// ValidationRejectionsTotal counts submissions blocked before any backend call.
// Label:
//   - rule: the rule that rejected the working copy (e.g. "duration_exceeded")
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of submissions rejected by a validation rule.",
	},
	[]string{"rule"},
)

// ObserveBackend records one backend call. Its signature matches the
// backend client's Observer hook.
func ObserveBackend(op string, status int, elapsed time.Duration) {
	// ops carry ids ("GET /reservas/42"); collapse them to keep cardinality low.
	BackendRequestDuration.WithLabelValues(opTemplate(op), strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func opTemplate(op string) string {
	end := len(op)
	for end > 0 && op[end-1] >= '0' && op[end-1] <= '9' {
		end--
	}
	if end < len(op) && end > 0 && op[end-1] == '/' {
		return op[:end] + ":id"
	}
	return op
}

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
