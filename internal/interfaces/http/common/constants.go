package common

const (
	// MaxRequestBody limits JSON request bodies for search and preference endpoints.
	MaxRequestBody = 64 << 10
	// MsgInternalError is the only detail clients see for store failures.
	MsgInternalError = "Internal server error"
)
