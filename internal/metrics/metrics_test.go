package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.VerificationsTotal.WithLabelValues("true", "websearch").Inc()
	m.VerificationsTotal.WithLabelValues("true", "websearch").Inc()
	m.CacheEventsTotal.WithLabelValues("hit").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.VerificationsTotal.WithLabelValues("true", "websearch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheEventsTotal.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CacheEventsTotal.WithLabelValues("miss")))
}
