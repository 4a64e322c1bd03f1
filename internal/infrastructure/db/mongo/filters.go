package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sismin/backoffice-api/internal/core/access"
)

// withScope applies an access scope to a query filter on the concession
// field. An unrestricted scope leaves the filter untouched; a single-id scope
// uses direct equality, larger ones an $in.
func withScope(filter bson.M, scope access.Scope) bson.M {
	if scope.All {
		return filter
	}
	if len(scope.ConcessionIDs) == 1 {
		filter["concession"] = scope.ConcessionIDs[0]
		return filter
	}
	filter["concession"] = bson.M{"$in": scope.ConcessionIDs}
	return filter
}

// notDeleted excludes soft-deleted documents.
func notDeleted(filter bson.M) bson.M {
	filter["deleted_at"] = nil
	return filter
}
