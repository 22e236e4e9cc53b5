package service

import (
	"fmt"
	"net/http"

	"github.com/MetalBlockchain/calldata/api"
	"github.com/MetalBlockchain/calldata/chain/calldata"
	"github.com/MetalBlockchain/calldata/chain/constants"
	"github.com/MetalBlockchain/calldata/metrics"
	"github.com/MetalBlockchain/metalgo/utils/logging"
	"go.uber.org/zap"
)

const (
	methodParse     = "parse"
	methodSerialize = "serialize"
)

type Service struct {
	log     logging.Logger
	metrics metrics.Metrics
	parser  calldata.Parser
}

// New returns a Service that rejects call data longer than [maxCallDataSize]
// bytes.
func New(log logging.Logger, metrics metrics.Metrics, maxCallDataSize int) *Service {
	return &Service{
		log:     log,
		metrics: metrics,
		parser:  calldata.NewParser(maxCallDataSize),
	}
}

func (s *Service) Ping(_ *http.Request, _ *struct{}, reply *api.PingReply) error {
	s.log.Info("API called", zap.String("service", constants.AppName), zap.String("method", "ping"))

	reply.Success = true
	return nil
}

func (s *Service) Parse(_ *http.Request, args *api.ParseArgs, reply *api.ParseReply) error {
	s.log.Debug("API called",
		zap.String("service", constants.AppName),
		zap.String("method", methodParse),
		logging.UserString("callData", args.CallData),
	)

	d, err := s.parser.ParseHex(args.CallData)
	if err != nil {
		s.metrics.MarkFailed(methodParse)
		s.log.Debug("failed to parse call data",
			zap.Error(err),
		)
		return fmt.Errorf("problem parsing call data: %w", err)
	}
	if err := s.metrics.MarkParsed(d); err != nil {
		return err
	}

	reply.Tx = *d
	return nil
}

func (s *Service) Serialize(_ *http.Request, args *api.SerializeArgs, reply *api.SerializeReply) error {
	s.log.Debug("API called",
		zap.String("service", constants.AppName),
		zap.String("method", methodSerialize),
		zap.Stringer("opCode", args.Tx.OpCode),
		logging.UserString("methodName", args.Tx.MethodName),
		zap.Int("numParams", len(args.Tx.MethodParameters)),
	)

	callData, err := calldata.SerializeHex(&args.Tx)
	if err != nil {
		s.metrics.MarkFailed(methodSerialize)
		s.log.Debug("failed to serialize call record",
			zap.Error(err),
		)
		return fmt.Errorf("problem serializing call record: %w", err)
	}
	if err := s.metrics.MarkSerialized(&args.Tx); err != nil {
		return err
	}

	reply.CallData = callData
	return nil
}
