package opcode

import (
	"errors"
	"fmt"
)

// List of opcodes a contract transaction output can carry:
// - [CreateContract] deploys new contract code
// - [CallContract] invokes a method on a deployed contract
const (
	CreateContract OpCode = 0xC0
	CallContract   OpCode = 0xC1
)

var (
	ErrUnknownOpCode = errors.New("unknown opcode")

	_ fmt.Stringer = OpCode(0)
)

type OpCode byte

// Verify that this is a known opcode.
func (o OpCode) Verify() error {
	switch o {
	case CreateContract, CallContract:
		return nil
	default:
		return fmt.Errorf("%w: 0x%02x", ErrUnknownOpCode, byte(o))
	}
}

func (o OpCode) String() string {
	switch o {
	case CreateContract:
		return "CreateContract"
	case CallContract:
		return "CallContract"
	default:
		return fmt.Sprintf("OpCode(0x%02x)", byte(o))
	}
}
