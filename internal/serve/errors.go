package serve

import "fmt"

// BindError is returned when a listening socket can't be opened. Nothing retries it.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("binding %s: %s", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
