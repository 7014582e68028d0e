package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/db"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

const tpcMemberResource = "TPC member"

// TPCMemberFilter narrows roster lists.
type TPCMemberFilter struct {
	ListOptions
	Team       string             `form:"team"`
	Department string             `form:"department"`
	Category   models.TPCCategory `form:"category" binding:"omitempty,oneof=student faculty"`
	Session    string             `form:"session" binding:"omitempty,session"`
}

func (f TPCMemberFilter) toBSON() bson.M {
	filter := bson.M{}
	f.activeClause(filter)
	if f.Team != "" {
		filter["team"] = equalsInsensitive(f.Team)
	}
	if f.Department != "" {
		filter["department"] = equalsInsensitive(f.Department)
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Session != "" {
		filter["sessions"] = f.Session
	}
	searchClause(filter, f.Search, "name", "role", "team", "department")
	return filter
}

// TPCMemberRepository handles placement cell roster operations
type TPCMemberRepository struct {
	coll collection
}

// NewTPCMemberRepository creates a new TPCMemberRepository
func NewTPCMemberRepository(database *mongo.Database, observe ErrorObserver) *TPCMemberRepository {
	return &TPCMemberRepository{coll: newCollection(database, db.TPCMembersCollection, tpcMemberResource, observe)}
}

// List returns one page of members matching filter.
func (r *TPCMemberRepository) List(ctx context.Context, filter TPCMemberFilter, page, limit int) ([]models.TPCMember, int64, error) {
	sort := filter.sort("name", "team", "department", "role", "createdAt")
	items, total, err := findPage[models.TPCMember](ctx, r.coll, filter.toBSON(), sort, page, limit)
	if err != nil {
		return nil, 0, r.coll.translate(err, "list")
	}
	return items, total, nil
}

// GetByID retrieves a member by hex id.
func (r *TPCMemberRepository) GetByID(ctx context.Context, id string) (*models.TPCMember, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findByID[models.TPCMember](ctx, r.coll, oid)
}

// Create inserts a new member.
func (r *TPCMemberRepository) Create(ctx context.Context, m *models.TPCMember) error {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.CreatedAt, m.UpdatedAt = now, now
	if m.Sessions == nil {
		m.Sessions = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return r.coll.translate(err, "create")
	}
	return nil
}

// Update replaces the stored document with m.
func (r *TPCMemberRepository) Update(ctx context.Context, m *models.TPCMember) error {
	m.UpdatedAt = time.Now().UTC()
	if m.Sessions == nil {
		m.Sessions = []string{}
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(tpcMemberResource)
	}
	return nil
}

// SoftDelete marks the member inactive.
func (r *TPCMemberRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, false)
}

// Restore reverses SoftDelete.
func (r *TPCMemberRepository) Restore(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, true)
}

// HardDelete removes the member permanently.
func (r *TPCMemberRepository) HardDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.deleteByID(ctx, oid)
}
