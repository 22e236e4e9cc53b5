package metrics

import (
	"errors"

	"github.com/MetalBlockchain/calldata/chain/calldata"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	methodLabel = "method"
	opCodeLabel = "opcode"

	methodParse     = "parse"
	methodSerialize = "serialize"
)

var (
	callLabels   = []string{methodLabel, opCodeLabel}
	failedLabels = []string{methodLabel}
)

type callMetrics struct {
	paramMetrics *paramMetrics
	numCalls     *prometheus.CounterVec
	numFailed    *prometheus.CounterVec
	callSize     prometheus.Histogram
}

func newCallMetrics(registerer prometheus.Registerer) (*callMetrics, error) {
	paramMetrics, err := newParamMetrics(registerer)
	if err != nil {
		return nil, err
	}

	m := &callMetrics{
		paramMetrics: paramMetrics,
		numCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls_processed",
				Help: "number of call records parsed or serialized",
			},
			callLabels,
		),
		numFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls_failed",
				Help: "number of rejected parse or serialize requests",
			},
			failedLabels,
		),
		callSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "call_params",
				Help:    "number of method parameters per call record",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
			},
		),
	}
	return m, errors.Join(
		registerer.Register(m.numCalls),
		registerer.Register(m.numFailed),
		registerer.Register(m.callSize),
	)
}

func (m *callMetrics) mark(method string, d *calldata.ContractTxData) error {
	m.numCalls.With(prometheus.Labels{
		methodLabel: method,
		opCodeLabel: d.OpCode.String(),
	}).Inc()
	m.callSize.Observe(float64(len(d.MethodParameters)))
	for _, p := range d.MethodParameters {
		if err := p.Visit(m.paramMetrics); err != nil {
			return err
		}
	}
	return nil
}
