package client

// Kind classifies why a fetch failed.
type Kind string

const (
	KindTransport Kind = "transport" // request never got a response
	KindStatus    Kind = "status"    // non-2xx response
	KindDecode    Kind = "decode"    // body did not match the expected shape
	KindInvalid   Kind = "invalid"   // decoded record has blank fields
)

// FetchError is returned by every data call of the Client. Callers that only care
// that the fetch failed can stop at errors.As; callers that need more can switch on
// Kind or unwrap to the cause.
type FetchError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

func newFetchError(kind Kind, what string, err error) *FetchError {
	return &FetchError{Kind: kind, Message: "failed to fetch " + what, Err: err}
}
