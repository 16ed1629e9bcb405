package prune

import (
	"fmt"
	"io"

	"github.com/LegacyCodeHQ/resprune/resources"
)

// WriteReport prints the outcome of a run: a success line, the number of
// deleted resources (or unused ones when the run did not prune), then one
// unused name per line.
func WriteReport(w io.Writer, result resources.Result) error {
	if _, err := fmt.Fprintln(w, "Success"); err != nil {
		return err
	}

	var err error
	if result.Pruned {
		_, err = fmt.Fprintf(w, "Deleted %d resources\n", len(result.Deleted))
	} else {
		_, err = fmt.Fprintf(w, "Found %d unused resources\n", len(result.Unused))
	}
	if err != nil {
		return err
	}

	for _, name := range result.Unused {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
