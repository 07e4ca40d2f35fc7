package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

func scrape(t *testing.T, r *Registry) map[string]*dto.MetricFamily {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(rec.Body)
	if err != nil {
		t.Fatalf("parse exposition: %v", err)
	}
	return mfs
}

func labels(m *dto.Metric) map[string]string {
	out := make(map[string]string)
	for _, lp := range m.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

func TestHandler_EmptyRegistry(t *testing.T) {
	mfs := scrape(t, New())
	if len(mfs) != 0 {
		t.Errorf("families = %d, want 0 before any observation", len(mfs))
	}
}

func TestHandler_Counters(t *testing.T) {
	r := New()
	r.ObserveEvaluation("bmi", "ok", "local")
	r.ObserveEvaluation("bmi", "ok", "local")
	r.ObserveEvaluation("bmi", "ok", "remote")
	r.ObserveEvaluation("abi", "undefined", "local")
	r.ObserveValidationError("bmr")
	r.ObserveRemoteFailure("bmi")
	r.ObserveProfileWrite("save")

	mfs := scrape(t, r)

	ev := mfs[Evaluations]
	if ev == nil {
		t.Fatalf("%s missing", Evaluations)
	}
	if ev.GetType() != dto.MetricType_COUNTER {
		t.Errorf("type = %v, want COUNTER", ev.GetType())
	}
	if len(ev.GetMetric()) != 3 {
		t.Fatalf("series = %d, want 3", len(ev.GetMetric()))
	}
	var found bool
	for _, m := range ev.GetMetric() {
		l := labels(m)
		if l["calculator"] == "bmi" && l["outcome"] == "ok" && l["source"] == "local" {
			found = true
			if got := m.GetCounter().GetValue(); got != 2 {
				t.Errorf("bmi/ok/local = %v, want 2", got)
			}
		}
	}
	if !found {
		t.Error("bmi/ok/local series missing")
	}

	for _, name := range []string{ValidationErrors, RemoteFailures, ProfileWrites} {
		mf := mfs[name]
		if mf == nil || len(mf.GetMetric()) != 1 || mf.GetMetric()[0].GetCounter().GetValue() != 1 {
			t.Errorf("%s = %v, want one series at 1", name, mf)
		}
	}
}

func TestHandler_ClientsGauge(t *testing.T) {
	r := New()
	r.SetClientsFunc(func() int { return 3 })

	mf := scrape(t, r)[WSClients]
	if mf == nil {
		t.Fatalf("%s missing", WSClients)
	}
	if mf.GetType() != dto.MetricType_GAUGE {
		t.Errorf("type = %v, want GAUGE", mf.GetType())
	}
	if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 3 {
		t.Errorf("clients = %v, want 3", got)
	}
}

func TestRegistry_WrongLabelCountIsDropped(t *testing.T) {
	r := New()
	r.inc(Evaluations, "bmi")
	r.inc("unknown_family", "x")
	for _, mf := range r.Gather() {
		if len(mf.GetMetric()) != 0 {
			t.Errorf("%s has %d series, want 0", mf.GetName(), len(mf.GetMetric()))
		}
	}
}

func TestRegistry_ConcurrentObserve(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ObserveEvaluation("tdee", "ok", "local")
		}()
	}
	wg.Wait()

	for _, mf := range r.Gather() {
		if mf.GetName() != Evaluations {
			continue
		}
		if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 50 {
			t.Errorf("count = %v, want 50", got)
		}
	}
}
