// Package metrics holds the server's Prometheus instruments.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/status"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry contains all application metrics.
type Registry struct {
	reg *prometheus.Registry

	AuthAttempts   *prometheus.CounterVec
	DirectoryWrite *prometheus.CounterVec
	OrphanReports  *prometheus.CounterVec
	OrphansFound   prometheus.Gauge
	Watchers       prometheus.Gauge
}

// NewRegistry creates the instruments on a private registry, together
// with the Go and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Registry{
		reg: reg,
		AuthAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userdir",
			Name:      "auth_attempts_total",
			Help:      "Credential operations by method and result code.",
		}, []string{"method", "result"}),
		DirectoryWrite: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userdir",
			Name:      "directory_writes_total",
			Help:      "Profile writes by operation and result.",
		}, []string{"op", "result"}),
		OrphanReports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userdir",
			Name:      "orphan_reports_total",
			Help:      "Orphan scans by result.",
		}, []string{"result"}),
		OrphansFound: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "userdir",
			Name:      "orphan_profiles",
			Help:      "Orphan profiles seen by the last scan.",
		}),
		Watchers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "userdir",
			Name:      "directory_watchers",
			Help:      "Open directory Watch streams.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// ObserveAuth counts one credential operation; the result label is the
// gRPC code of err.
func (r *Registry) ObserveAuth(method string, err error) {
	r.AuthAttempts.WithLabelValues(method, status.Code(err).String()).Inc()
}

// ObserveWrite counts one directory write.
func (r *Registry) ObserveWrite(op string, err error) {
	r.DirectoryWrite.WithLabelValues(op, result(err)).Inc()
}

// ObserveOrphanScan records a janitor pass.
func (r *Registry) ObserveOrphanScan(found int, err error) {
	r.OrphanReports.WithLabelValues(result(err)).Inc()
	if err == nil {
		r.OrphansFound.Set(float64(found))
	}
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
