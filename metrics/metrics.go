package metrics

import (
	"github.com/MetalBlockchain/calldata/chain/calldata"
	"github.com/MetalBlockchain/metalgo/utils/metric"
	"github.com/MetalBlockchain/metalgo/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	metric.APIInterceptor

	// Mark that the given call record was decoded.
	MarkParsed(*calldata.ContractTxData) error
	// Mark that the given call record was encoded.
	MarkSerialized(*calldata.ContractTxData) error
	// Mark that a request for [method] was rejected.
	MarkFailed(method string)
}

func New(registerer prometheus.Registerer) (Metrics, error) {
	callMetrics, err := newCallMetrics(registerer)
	m := &metrics{
		callMetrics: callMetrics,
	}

	errs := wrappers.Errs{Err: err}
	apiRequestMetrics, err := metric.NewAPIInterceptor(registerer)
	errs.Add(err)
	m.APIInterceptor = apiRequestMetrics

	return m, errs.Err
}

type metrics struct {
	metric.APIInterceptor

	callMetrics *callMetrics
}

func (m *metrics) MarkParsed(d *calldata.ContractTxData) error {
	return m.callMetrics.mark(methodParse, d)
}

func (m *metrics) MarkSerialized(d *calldata.ContractTxData) error {
	return m.callMetrics.mark(methodSerialize, d)
}

func (m *metrics) MarkFailed(method string) {
	m.callMetrics.numFailed.With(prometheus.Labels{
		methodLabel: method,
	}).Inc()
}
