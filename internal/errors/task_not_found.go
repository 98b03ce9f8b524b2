package errors

var ErrNotFound = &Exception{
	Message:  "task not found",
	ExitCode: 4,
}
