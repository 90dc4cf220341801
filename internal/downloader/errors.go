package downloader

// RetrievalError reports a failure of the external retrieval engine.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return "retrieval failed: " + e.Err.Error()
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// TranscodeError reports a failed audio conversion after a successful
// retrieval.
type TranscodeError struct {
	Err error
}

func (e *TranscodeError) Error() string {
	return "transcode failed: " + e.Err.Error()
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}
