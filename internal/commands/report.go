package commands

import (
	"errors"
	"fmt"
	"io"

	"worktrack/internal/exitcode"
	"worktrack/internal/integrity"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

// report prints err and returns the matching exit code.
func report(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return codeFor(err)
}

// codeFor classifies err into an exit code.
// Rejected input is a user error; failed saves and remote failures are backend errors.
func codeFor(err error) int {
	var verr *tracker.ValidationError
	var ierr *integrity.Error
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, tracker.ErrPersist):
		return exitcode.BackendError
	case errors.Is(err, service.ErrAuth):
		return exitcode.AuthError
	case errors.As(err, &verr), errors.As(err, &ierr):
		return exitcode.UserError
	default:
		return exitcode.BackendError
	}
}

// ok prints the success marker unless quiet.
func ok(out io.Writer, quiet bool) int {
	if !quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// usageError prints err as a user error.
func usageError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
