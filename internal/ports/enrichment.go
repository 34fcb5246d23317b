package ports

import (
	"context"

	"github.com/guardshell/riskscan/internal/domain"
)

// DNSResolver resolves DNS records for enrichment checks. Implementations
// are expected to treat lookup failures as "no records" rather than hard
// errors wherever the upstream allows it; the analyzer absorbs any error
// that does surface into a fallback.
type DNSResolver interface {
	// Resolve returns the record strings for a name and record type
	// ("MX" or "TXT"). An empty slice with a nil error means the name
	// publishes no such records.
	Resolve(ctx context.Context, name, recordType string) ([]string, error)
}

// BreachDirectory looks up an address in a breach database.
type BreachDirectory interface {
	// LookupBreaches returns known breaches for the address. A not-found
	// response is (nil, nil); any other failure returns an error, which the
	// analyzer replaces with a simulated fallback.
	LookupBreaches(ctx context.Context, email string) ([]domain.Breach, error)
}
