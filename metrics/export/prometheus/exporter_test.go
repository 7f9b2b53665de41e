package prometheus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	boardAuth "github.com/MrEthical07/boardAuth"
)

type fakeSource struct {
	snapshot boardAuth.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() boardAuth.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                       { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewExporter(fakeSource{
		snapshot: boardAuth.MetricsSnapshot{
			Counters:   map[boardAuth.MetricID]uint64{},
			Histograms: map[boardAuth.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounterAndHistogram(t *testing.T) {
	exp := NewExporter(fakeSource{
		snapshot: boardAuth.MetricsSnapshot{
			Counters: map[boardAuth.MetricID]uint64{
				boardAuth.MetricLoginSuccess:    7,
				boardAuth.MetricAuthorizeDenied: 3,
			},
			Histograms: map[boardAuth.MetricID][]uint64{
				boardAuth.MetricPasswordVerifyLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	for _, want := range []string{
		"boardauth_login_success_total 7",
		"boardauth_authorize_denied_total 3",
		"boardauth_login_failure_total 0",
		`boardauth_password_verify_seconds_bucket{le="0.025"} 1`,
		`boardauth_password_verify_seconds_bucket{le="+Inf"} 36`,
		"boardauth_password_verify_seconds_count 36",
		"boardauth_audit_dropped_total 2",
		"# TYPE boardauth_password_verify_seconds histogram",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRenderOmitsDisabledHistogram(t *testing.T) {
	exp := NewExporter(fakeSource{
		snapshot: boardAuth.MetricsSnapshot{
			Counters:   map[boardAuth.MetricID]uint64{boardAuth.MetricLoginSuccess: 1},
			Histograms: map[boardAuth.MetricID][]uint64{},
		},
	})
	if strings.Contains(exp.Render(), "password_verify_seconds") {
		t.Fatal("expected no histogram when latency is disabled")
	}
}

func TestHandlerServesLiveEngine(t *testing.T) {
	engine, err := boardAuth.New().WithConfig(boardAuth.DefaultConfig()).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()
	_, _ = engine.Login(context.Background(), "c", "wrong")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	NewExporter(engine).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "boardauth_login_failure_total 1") {
		t.Fatalf("expected failed login to be exported, got:\n%s", rec.Body.String())
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewExporter(fakeSource{
		snapshot: boardAuth.MetricsSnapshot{
			Counters: map[boardAuth.MetricID]uint64{
				boardAuth.MetricLoginSuccess:     1000,
				boardAuth.MetricLoginFailure:     40,
				boardAuth.MetricSessionCreated:   1000,
				boardAuth.MetricAuthorizeSession: 9000,
			},
			Histograms: map[boardAuth.MetricID][]uint64{
				boardAuth.MetricPasswordVerifyLatency: {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
