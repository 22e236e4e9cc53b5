package constants

const (
	// AppName is used as the log prefix, the env prefix and the RPC service name.
	AppName = "calldata"

	Version = "v0.1.0"
)
