package openai

// TransportError reports that the HTTP round trip never completed: DNS
// failure, connection refused or reset, TLS failure, or a caller-imposed
// deadline. No response body exists when this is returned.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "openai: request failed: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports that a response was received but its body is not
// valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "openai: decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
