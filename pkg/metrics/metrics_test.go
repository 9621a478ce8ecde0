package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/foodcart/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestGeocodeCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("miss"))

	metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()
	metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("GeocodeCacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("GeocodeCacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestGeocodeProviderCalls_Inc(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.GeocodeProviderCalls.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.GeocodeProviderCalls.WithLabelValues("error"))

	metrics.GeocodeProviderCalls.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.GeocodeProviderCalls.WithLabelValues("ok")); got != okBefore+1 {
		t.Fatalf("GeocodeProviderCalls(ok): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.GeocodeProviderCalls.WithLabelValues("error")); got != errBefore {
		t.Fatalf("GeocodeProviderCalls(error): got=%v want=%v", got, errBefore)
	}
}

func TestGeocodeCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.GeocodeCacheSize)

	metrics.GeocodeCacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.GeocodeCacheSize); got != cur+5 {
		t.Fatalf("GeocodeCacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.GeocodeCacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.GeocodeCacheSize); got != cur {
		t.Fatalf("GeocodeCacheSize restore: got=%v want=%v", got, cur)
	}
}
