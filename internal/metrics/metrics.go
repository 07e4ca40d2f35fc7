package metrics

import (
	"bytes"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric family names.
const (
	Evaluations      = "healthcalc_evaluations_total"
	ValidationErrors = "healthcalc_validation_errors_total"
	RemoteFailures   = "healthcalc_remote_failures_total"
	ProfileWrites    = "healthcalc_profile_writes_total"
	WSClients        = "healthcalc_ws_clients"
)

// labelSep joins label values into a map key. It cannot occur in a
// calculator id, outcome or source.
const labelSep = "\x00"

type family struct {
	help   string
	labels []string
	values map[string]float64
}

// Registry holds the process counters. The zero value is not usable; call New.
type Registry struct {
	mu       sync.Mutex
	families map[string]*family
	clients  func() int
}

// New returns a Registry with every family registered and empty.
func New() *Registry {
	r := &Registry{families: make(map[string]*family)}
	r.register(Evaluations, "Calculator evaluations by outcome and value source.", "calculator", "outcome", "source")
	r.register(ValidationErrors, "Evaluations rejected for missing or invalid inputs.", "calculator")
	r.register(RemoteFailures, "Remote calculator API calls that failed.", "calculator")
	r.register(ProfileWrites, "Profile store writes by operation.", "op")
	return r
}

func (r *Registry) register(name, help string, labels ...string) {
	r.families[name] = &family{help: help, labels: labels, values: make(map[string]float64)}
}

func (r *Registry) inc(name string, labelValues ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.families[name]
	if !ok || len(labelValues) != len(f.labels) {
		slog.Warn("metrics: dropped increment", "family", name)
		return
	}
	f.values[strings.Join(labelValues, labelSep)]++
}

// ObserveEvaluation counts one completed evaluation.
func (r *Registry) ObserveEvaluation(calculator, outcome, source string) {
	r.inc(Evaluations, calculator, outcome, source)
}

// ObserveValidationError counts one rejected evaluation.
func (r *Registry) ObserveValidationError(calculator string) {
	r.inc(ValidationErrors, calculator)
}

// ObserveRemoteFailure counts one failed remote call.
func (r *Registry) ObserveRemoteFailure(calculator string) {
	r.inc(RemoteFailures, calculator)
}

// ObserveProfileWrite counts one profile save ("save") or clear ("clear").
func (r *Registry) ObserveProfileWrite(op string) {
	r.inc(ProfileWrites, op)
}

// SetClientsFunc registers the function reporting connected WebSocket clients.
func (r *Registry) SetClientsFunc(fn func() int) {
	r.mu.Lock()
	r.clients = fn
	r.mu.Unlock()
}

// Gather returns a snapshot of every family, sorted by name, with series
// sorted by label values.
func (r *Registry) Gather() []*dto.MetricFamily {
	r.mu.Lock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*dto.MetricFamily, 0, len(names)+1)
	for _, name := range names {
		out = append(out, r.counterFamily(name, r.families[name]))
	}
	clients := r.clients
	r.mu.Unlock()

	if clients != nil {
		out = append(out, &dto.MetricFamily{
			Name: proto.String(WSClients),
			Help: proto.String("Connected profile WebSocket clients."),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{
				Gauge: &dto.Gauge{Value: proto.Float64(float64(clients()))},
			}},
		})
	}
	return out
}

// counterFamily must be called with r.mu held.
func (r *Registry) counterFamily(name string, f *family) *dto.MetricFamily {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mf := &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(f.help),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, k := range keys {
		values := strings.Split(k, labelSep)
		m := &dto.Metric{Counter: &dto.Counter{Value: proto.Float64(f.values[k])}}
		for i, label := range f.labels {
			m.Label = append(m.Label, &dto.LabelPair{
				Name:  proto.String(label),
				Value: proto.String(values[i]),
			})
		}
		mf.Metric = append(mf.Metric, m)
	}
	return mf
}

// Handler serves GET /metrics in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var buf bytes.Buffer
		for _, mf := range r.Gather() {
			// expfmt rejects families without series.
			if len(mf.Metric) == 0 {
				continue
			}
			if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
				slog.Error("metrics: encode family", "family", mf.GetName(), "err", err)
				http.Error(w, "encode metrics", http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		_, _ = w.Write(buf.Bytes())
	})
}
