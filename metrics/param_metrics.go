package metrics

import (
	"github.com/MetalBlockchain/calldata/chain/param"
	"github.com/prometheus/client_golang/prometheus"
)

const paramLabel = "param"

var (
	_ param.Visitor = (*paramMetrics)(nil)

	paramLabels = []string{paramLabel}
)

type paramMetrics struct {
	numParams *prometheus.CounterVec
}

func newParamMetrics(registerer prometheus.Registerer) (*paramMetrics, error) {
	m := &paramMetrics{
		numParams: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "params_processed",
				Help: "number of method parameters processed, by kind",
			},
			paramLabels,
		),
	}
	return m, registerer.Register(m.numParams)
}

func (m *paramMetrics) inc(tag param.Tag) error {
	m.numParams.With(prometheus.Labels{
		paramLabel: tag.String(),
	}).Inc()
	return nil
}

func (m *paramMetrics) BoolParam(v param.Bool) error           { return m.inc(v.Tag()) }
func (m *paramMetrics) ByteParam(v param.Byte) error           { return m.inc(v.Tag()) }
func (m *paramMetrics) CharParam(v param.Char) error           { return m.inc(v.Tag()) }
func (m *paramMetrics) StringParam(v param.String) error       { return m.inc(v.Tag()) }
func (m *paramMetrics) UIntParam(v param.UInt) error           { return m.inc(v.Tag()) }
func (m *paramMetrics) IntParam(v param.Int) error             { return m.inc(v.Tag()) }
func (m *paramMetrics) ULongParam(v param.ULong) error         { return m.inc(v.Tag()) }
func (m *paramMetrics) LongParam(v param.Long) error           { return m.inc(v.Tag()) }
func (m *paramMetrics) AddressParam(v param.Address) error     { return m.inc(v.Tag()) }
func (m *paramMetrics) ByteArrayParam(v param.ByteArray) error { return m.inc(v.Tag()) }
func (m *paramMetrics) UInt128Param(v param.UInt128) error     { return m.inc(v.Tag()) }
func (m *paramMetrics) UInt256Param(v param.UInt256) error     { return m.inc(v.Tag()) }
