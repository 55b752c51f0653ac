package root

import (
	"errors"
	"fmt"
	"io"

	errUtils "github.com/BerryBytes/ssocreds/internal/errors"

	"github.com/aws/smithy-go"
)

// HandleError prints err for the user. Known errors show only their message;
// anything else is reported as unexpected with whatever AWS API detail it carries.
func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var usage *errUtils.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "Error: %v\nRun 'ssocreds --help' for usage.\n", usage.Err)
		return
	}

	var known *errUtils.KnownError
	if errors.As(err, &known) {
		fmt.Fprintln(w, known.Message)
		return
	}

	fmt.Fprintln(w, "Unexpected error:")
	fmt.Fprintf(w, "  %v\n", err)

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		fmt.Fprintf(w, "  operation: %s %s\n", opErr.Service(), opErr.Operation())
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(w, "  code:      %s\n", apiErr.ErrorCode())
		fmt.Fprintf(w, "  message:   %s\n", apiErr.ErrorMessage())
		fmt.Fprintf(w, "  fault:     %s\n", apiErr.ErrorFault())
	}
}
