package audit

import "context"

// Sink is the single audit surface for every workflow. The assign-donors
// flow writes here too; there is no side-channel flat-file log.
type Sink interface {
	Record(ctx context.Context, e Entry) error
}
