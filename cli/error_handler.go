package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kakapo/kakapo/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message suited to the error's code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	kerr, ok := errors.As(err)
	if !ok {
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
		return err
	}

	switch kerr.Code {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found. Run 'kakapo init' to create a kakapo.yml.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ Invalid configuration: %s\n", kerr.Message)
		if kerr.Cause != nil {
			fmt.Fprintf(h.Out, "   %v\n", kerr.Cause)
		}
		if path, ok := kerr.Details["path"]; ok {
			fmt.Fprintf(h.Out, "Check %v or run 'kakapo config show'.\n", path)
		}

	case errors.ErrCodeCatalogLoad, errors.ErrCodeCatalogSource:
		fmt.Fprintf(h.Out, "❌ Could not read the catalog: %v\n", err)
		fmt.Fprintf(h.Out, "Check catalog.root and catalog.database in kakapo.yml.\n")

	case errors.ErrCodeUnknownKind:
		fmt.Fprintf(h.Out, "❌ Unknown entity kind '%v'. Use table, view, query or script.\n", kerr.Details["kind"])

	case errors.ErrCodeFileExists:
		fmt.Fprintf(h.Out, "❌ %v already exists. Pass --force to overwrite it.\n", kerr.Details["path"])

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", kerr.ToJSON())
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, errors.ErrCodeConfigNotFound)
}
