package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/dberrors"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
	"github.com/harish176/placement-portal/internal/pkg/logger"
)

// ListOptions are the query parameters every list endpoint accepts.
type ListOptions struct {
	Search          string `form:"search"`
	SortBy          string `form:"sortBy"`
	SortOrder       string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	IsActive        *bool  `form:"isActive"`
	IncludeInactive bool   `form:"includeInactive"`
}

// activeClause narrows a list to active records unless the caller asks
// otherwise. An explicit isActive wins over includeInactive.
func (o ListOptions) activeClause(filter bson.M) {
	switch {
	case o.IsActive != nil:
		filter["isActive"] = *o.IsActive
	case !o.IncludeInactive:
		filter["isActive"] = true
	}
}

// sort returns the sort document. Unknown sortBy values fall back to createdAt.
func (o ListOptions) sort(allowed ...string) bson.D {
	field := "createdAt"
	for _, a := range allowed {
		if o.SortBy == a {
			field = a
			break
		}
	}
	dir := -1
	if strings.EqualFold(o.SortOrder, "asc") {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// containsInsensitive matches value anywhere in a field, ignoring case.
func containsInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(value)), Options: "i"}
}

// equalsInsensitive matches the whole field, ignoring case.
func equalsInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(value)) + "$", Options: "i"}
}

// searchClause expands term into an OR of partial matches over fields.
func searchClause(filter bson.M, term string, fields ...string) {
	if strings.TrimSpace(term) == "" {
		return
	}
	re := containsInsensitive(term)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	filter["$or"] = or
}

// findPage runs a counted, sorted, paginated find.
func findPage[T any](ctx context.Context, coll collection, filter bson.M, sort bson.D, page, limit int) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", coll.Name(), err)
	}

	skip, size := helpers.CalculateSkipLimit(page, limit)
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(size)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, size)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return items, total, nil
}

// ParseObjectID converts a hex id, failing with an invalid-id error.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidIDError(id)
	}
	return oid, nil
}

// ErrorObserver is told about storage errors that are not application errors.
type ErrorObserver func(resource, op string)

// collection binds a Mongo collection to the resource name used in errors and
// to the observer for unexpected failures. observe may be nil.
type collection struct {
	*mongo.Collection
	resource string
	observe  ErrorObserver
}

func newCollection(database *mongo.Database, name, resource string, observe ErrorObserver) collection {
	return collection{Collection: database.Collection(name), resource: resource, observe: observe}
}

// translate maps driver errors onto the application error set. Anything else
// is wrapped with op for context.
func (c collection) translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.NewNotFoundError(c.resource)
	case dberrors.IsDuplicateKey(err):
		return apperrors.NewDuplicateKeyError(dberrors.DuplicateKeyField(err), err)
	}
	if c.observe != nil {
		c.observe(c.resource, op)
	}
	logger.Error().Err(err).Str("resource", c.resource).Str("op", op).Msg("Database operation failed")
	return fmt.Errorf("%s %s: %w", op, c.resource, err)
}

// setActive flips the soft-delete flag.
func (c collection) setActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	res, err := c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return c.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(c.resource)
	}
	return nil
}

// deleteByID removes a document permanently.
func (c collection) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.translate(err, "delete")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError(c.resource)
	}
	return nil
}

// findByID decodes one document by id.
func findByID[T any](ctx context.Context, coll collection, id primitive.ObjectID) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return nil, coll.translate(err, "find")
	}
	return &out, nil
}

// updateFields applies a $set and returns the updated document.
func updateFields[T any](ctx context.Context, coll collection, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		return findByID[T](ctx, coll, id)
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return nil, coll.translate(err, "update")
	}
	return &out, nil
}
