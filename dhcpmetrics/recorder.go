// Package dhcpmetrics is an optional instrumentation decorator around the
// dhcpv4 and dhcpv6 codecs. It never runs by default and the codec
// packages never import it; a caller who wants decode-rate and
// decode-error visibility constructs a Recorder and calls its DecodeV4 /
// DecodeV6 wrappers instead of calling the codec packages directly.
package dhcpmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/athena-dhcpd/dhcpcodec/dhcpv4"
	"github.com/athena-dhcpd/dhcpcodec/dhcpv6"
)

const namespace = "dhcpcodec"

// Recorder wraps a caller-supplied Prometheus registerer with counters
// and histograms tracking codec activity. Unlike a package-level
// promauto default, the registry is always explicit: there is no global
// state here to collide across independent callers in the same process.
type Recorder struct {
	decodeAttempts *prometheus.CounterVec
	decodeErrors   *prometheus.CounterVec
	optionCounts   *prometheus.HistogramVec
}

// NewRecorder registers a fresh metric set against reg and returns the
// Recorder that updates them. Registering the same Recorder's metrics
// against reg twice panics, matching prometheus.Registerer's own
// contract.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		decodeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_attempts_total",
			Help:      "Total decode attempts, by protocol version.",
		}, []string{"version"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Total decode failures, by protocol version.",
		}, []string{"version"}),
		optionCounts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decoded_option_count",
			Help:      "Number of options found per successfully decoded message, by protocol version.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"version"}),
	}
	reg.MustRegister(r.decodeAttempts, r.decodeErrors, r.optionCounts)
	return r
}

// DecodeV4 decodes buf as a DHCPv4 message, recording the attempt and,
// on success, the resulting option count.
func (r *Recorder) DecodeV4(buf []byte) (*dhcpv4.Message, error) {
	r.decodeAttempts.WithLabelValues("v4").Inc()
	msg, err := dhcpv4.DecodeBytes(buf)
	if err != nil {
		r.decodeErrors.WithLabelValues("v4").Inc()
		return nil, err
	}
	r.optionCounts.WithLabelValues("v4").Observe(float64(msg.Options.Len()))
	return msg, nil
}

// DecodeV6 decodes buf as a DHCPv6 message, recording the attempt and,
// on success, the resulting option count.
func (r *Recorder) DecodeV6(buf []byte) (*dhcpv6.Message, error) {
	r.decodeAttempts.WithLabelValues("v6").Inc()
	msg, err := dhcpv6.DecodeBytes(buf)
	if err != nil {
		r.decodeErrors.WithLabelValues("v6").Inc()
		return nil, err
	}
	r.optionCounts.WithLabelValues("v6").Observe(float64(msg.Options.Len()))
	return msg, nil
}
