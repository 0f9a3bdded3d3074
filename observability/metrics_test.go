package observability_test

import (
	"testing"

	"github.com/apparata/appconsole/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordConnection(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.RecordConnection("service", "accepted")
	m.ConnectionOpened()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	found := false
	for _, f := range families {
		if f.GetName() == "appconsole_connections_total" {
			found = true
			require.Len(t, f.Metric, 1)
			require.Equal(t, float64(1), f.Metric[0].GetCounter().GetValue())
		}
	}
	require.True(t, found)
}

func TestMetricsNilReceiverIsNoop(t *testing.T) {
	var m *observability.Metrics
	require.NotPanics(t, func() {
		m.RecordConnection("client", "failed")
		m.ConnectionOpened()
		m.ConnectionClosed()
		m.RecordFrame("send", "executeCommand", 128)
		m.RecordParseOutcome("noSuchCommand")
	})
}
