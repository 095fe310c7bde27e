// internal/app/system/search/search.go
//
// Package search builds the case-insensitive $or regex filters used by the
// list endpoints. User input is always escaped with regexp.QuoteMeta before
// it reaches Mongo, so a query like "a+b(" matches literally instead of
// being interpreted as a pattern.
package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Regex returns a case-insensitive regex primitive matching q anywhere in
// a string field. The pattern is fully escaped.
func Regex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(q)), Options: "i"}
}

// Or builds the {"$or": [{field: /q/i}, ...]} clause for a free-text search
// across the given fields. Returns nil when q is blank or no fields are
// given, so callers can skip merging it into the filter.
func Or(q string, fields ...string) bson.M {
	q = strings.TrimSpace(q)
	if q == "" || len(fields) == 0 {
		return nil
	}
	re := Regex(q)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}
