package errors

var ErrStorageUnavailable = &Exception{
	Message:  "storage unavailable",
	ExitCode: 3,
	Fatal:    true,
}

var ErrReadFailed = &Exception{
	Message:  "reading tasks failed",
	ExitCode: 3,
	Fatal:    true,
}

var ErrWriteFailed = &Exception{
	Message:  "writing task failed",
	ExitCode: 5,
}
