package param

// Visitor is called with the concrete kind of a Parameter. Adding a kind
// breaks every implementation until it handles the new method.
type Visitor interface {
	BoolParam(Bool) error
	ByteParam(Byte) error
	CharParam(Char) error
	StringParam(String) error
	UIntParam(UInt) error
	IntParam(Int) error
	ULongParam(ULong) error
	LongParam(Long) error
	AddressParam(Address) error
	ByteArrayParam(ByteArray) error
	UInt128Param(UInt128) error
	UInt256Param(UInt256) error
}
