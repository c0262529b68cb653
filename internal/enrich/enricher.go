// Package enrich defines the identity-graph enrichment boundary and the
// fixture-backed simulator used until a live vendor integration exists.
package enrich

import (
	"context"

	"github.com/brandresponse/brandintel/internal/model"
)

// Enricher augments a customer record set with the selected identity-graph
// attributes. Implementations may return fewer rows than the input when
// identity matching fails for some records.
type Enricher interface {
	Enrich(ctx context.Context, records *model.RecordSet, vars []model.VariableRecommendation) (*model.EnrichedRecordSet, error)
}
