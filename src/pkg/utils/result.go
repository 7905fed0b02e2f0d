package utils

// Result is the uniform return value of every usecase method.
type Result struct {
	Data  any
	Error error
}
