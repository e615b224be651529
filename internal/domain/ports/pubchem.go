package ports

import (
	"context"
	"fmt"
)

// StatusError is returned when a service answers with a status that says
// nothing about the identifier, such as throttling or maintenance.
type StatusError struct {
	Service string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Code)
}

// PubChemClient checks compound identifiers against PubChem.
type PubChemClient interface {
	// CompoundExists reports whether the CID resolves. A non-nil error means
	// the lookup itself failed and says nothing about the CID. Throttling and
	// unavailability answers are reported as *StatusError.
	CompoundExists(ctx context.Context, cid string) (bool, error)
}
