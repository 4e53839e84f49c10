package metrics

import "fmt"

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar o Scanner.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// MetricType define os tipos suportados.
type MetricType string

const (
	TypeCount     MetricType = "count"
	TypeGauge     MetricType = "gauge"
	TypeHistogram MetricType = "histogram"
)

// Emit envia value pelo método do Provider correspondente a kind.
func Emit(p Provider, kind MetricType, name string, value float64, tags []string) error {
	switch kind {
	case TypeCount:
		return p.Count(name, value, tags)
	case TypeGauge:
		return p.Gauge(name, value, tags)
	case TypeHistogram:
		return p.Histogram(name, value, tags)
	default:
		return fmt.Errorf("metrics: unsupported metric type %q", kind)
	}
}

// NoopProvider descarta tudo; é o padrão quando métricas estão desabilitadas.
type NoopProvider struct{}

func (NoopProvider) Count(name string, value float64, tags []string) error     { return nil }
func (NoopProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }
