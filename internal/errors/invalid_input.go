package errors

var ErrInvalid = &Exception{
	Message:  "invalid input",
	ExitCode: 2,
}
