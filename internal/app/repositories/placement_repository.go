package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/db"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/money"
)

const (
	placementResource = "Placement"
	topCompaniesLimit = 10
)

// PlacementFilter narrows placement lists.
type PlacementFilter struct {
	ListOptions
	CompanyName   string               `form:"companyName"`
	PlacementType models.PlacementType `form:"placementType" binding:"omitempty,oneof=FTE Internship Intern+FTE PPO"`
	Branch        string               `form:"branch"`
	Batch         *int                 `form:"batch"`
	ScholarNumber string               `form:"scholarNumber"`
	MinPackage    string               `form:"minPackage"`
	MaxPackage    string               `form:"maxPackage"`
	// StudentID restricts the list to one linked student; set from the route.
	StudentID string `form:"-"`
}

func (f PlacementFilter) toBSON() (bson.M, error) {
	filter := bson.M{}
	f.activeClause(filter)
	if f.CompanyName != "" {
		filter["companyName"] = equalsInsensitive(f.CompanyName)
	}
	if f.PlacementType != "" {
		filter["placementType"] = f.PlacementType
	}
	if f.Branch != "" {
		filter["branch"] = equalsInsensitive(f.Branch)
	}
	if f.Batch != nil {
		filter["batch"] = *f.Batch
	}
	if f.ScholarNumber != "" {
		filter["scholarNumber"] = strings.ToUpper(strings.TrimSpace(f.ScholarNumber))
	}
	if f.StudentID != "" {
		oid, err := ParseObjectID(f.StudentID)
		if err != nil {
			return nil, err
		}
		filter["student"] = oid
	}

	rng := bson.M{}
	if f.MinPackage != "" {
		lo, err := money.Parse(f.MinPackage)
		if err != nil {
			return nil, apperrors.NewFieldError("minPackage", "minPackage must be a number")
		}
		rng["$gte"] = lo.Decimal128()
	}
	if f.MaxPackage != "" {
		hi, err := money.Parse(f.MaxPackage)
		if err != nil {
			return nil, apperrors.NewFieldError("maxPackage", "maxPackage must be a number")
		}
		rng["$lte"] = hi.Decimal128()
	}
	if len(rng) > 0 {
		filter["package"] = rng
	}

	searchClause(filter, f.Search, "companyName", "studentName", "scholarNumber")
	return filter, nil
}

// PlacementRepository handles placement database operations. Every write
// goes through the linker exactly once.
type PlacementRepository struct {
	coll   collection
	linker *PlacementLinker
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(database *mongo.Database, linker *PlacementLinker, observe ErrorObserver) *PlacementRepository {
	return &PlacementRepository{coll: newCollection(database, db.PlacementsCollection, placementResource, observe), linker: linker}
}

// List returns one page of placements matching filter.
func (r *PlacementRepository) List(ctx context.Context, filter PlacementFilter, page, limit int) ([]models.Placement, int64, error) {
	query, err := filter.toBSON()
	if err != nil {
		return nil, 0, err
	}
	sort := filter.sort("package", "offerDate", "companyName", "studentName", "batch", "createdAt")
	items, total, err := findPage[models.Placement](ctx, r.coll, query, sort, page, limit)
	if err != nil {
		return nil, 0, r.coll.translate(err, "list")
	}
	return items, total, nil
}

// GetByID retrieves a placement by hex id.
func (r *PlacementRepository) GetByID(ctx context.Context, id string) (*models.Placement, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findByID[models.Placement](ctx, r.coll, oid)
}

// Create links and inserts a new placement. Nothing is written when linking
// fails.
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) error {
	if err := r.linker.Link(ctx, p); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt, p.UpdatedAt = now, now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return r.coll.translate(err, "create")
	}
	return nil
}

// Update links p again and replaces the stored document.
func (r *PlacementRepository) Update(ctx context.Context, p *models.Placement) error {
	if err := r.linker.Link(ctx, p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(placementResource)
	}
	return nil
}

// SoftDelete marks the placement inactive.
func (r *PlacementRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, false)
}

// Restore reverses SoftDelete.
func (r *PlacementRepository) Restore(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, true)
}

// HardDelete removes the placement permanently.
func (r *PlacementRepository) HardDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.deleteByID(ctx, oid)
}

type statsFacet struct {
	Summary []struct {
		Total          int64        `bson:"total"`
		StudentsPlaced int64        `bson:"studentsPlaced"`
		Highest        money.Amount `bson:"highest"`
		Average        money.Amount `bson:"average"`
		Lowest         money.Amount `bson:"lowest"`
	} `bson:"summary"`
	ByType []struct {
		Type  models.PlacementType `bson:"_id"`
		Count int64                `bson:"count"`
	} `bson:"byType"`
	TopCompanies []struct {
		Name    string       `bson:"_id"`
		Offers  int64        `bson:"offers"`
		Highest money.Amount `bson:"highest"`
	} `bson:"topCompanies"`
}

// statsPipeline summarises active placements in one pass.
func statsPipeline(batch *int) mongo.Pipeline {
	match := bson.D{{Key: "isActive", Value: true}}
	if batch != nil {
		match = append(match, bson.E{Key: "batch", Value: *batch})
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.D{
			{Key: "summary", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: nil},
					{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
					{Key: "highest", Value: bson.D{{Key: "$max", Value: "$package"}}},
					{Key: "average", Value: bson.D{{Key: "$avg", Value: "$package"}}},
					{Key: "lowest", Value: bson.D{{Key: "$min", Value: "$package"}}},
					{Key: "students", Value: bson.D{{Key: "$addToSet", Value: "$scholarNumber"}}},
				}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "_id", Value: 0},
					{Key: "total", Value: 1},
					{Key: "highest", Value: 1},
					{Key: "average", Value: 1},
					{Key: "lowest", Value: 1},
					{Key: "studentsPlaced", Value: bson.D{{Key: "$size", Value: "$students"}}},
				}}},
			}},
			{Key: "byType", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$placementType"},
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
			}},
			{Key: "topCompanies", Value: bson.A{
				bson.D{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: "$companyName"},
					{Key: "offers", Value: bson.D{{Key: "$sum", Value: 1}}},
					{Key: "highest", Value: bson.D{{Key: "$max", Value: "$package"}}},
				}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "offers", Value: -1}, {Key: "_id", Value: 1}}}},
				bson.D{{Key: "$limit", Value: topCompaniesLimit}},
			}},
		}}},
	}
}

// Stats aggregates active placements, optionally for one batch.
func (r *PlacementRepository) Stats(ctx context.Context, batch *int) (*models.PlacementStats, error) {
	cursor, err := r.coll.Aggregate(ctx, statsPipeline(batch))
	if err != nil {
		return nil, r.coll.translate(err, "aggregate")
	}
	defer cursor.Close(ctx)

	var facets []statsFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, r.coll.translate(err, "aggregate")
	}

	stats := &models.PlacementStats{
		Batch:          batch,
		HighestPackage: money.Zero,
		AveragePackage: money.Zero,
		LowestPackage:  money.Zero,
		ByType:         make(map[models.PlacementType]int64, len(models.PlacementTypes)),
		TopCompanies:   []models.CompanyOffers{},
	}
	for _, t := range models.PlacementTypes {
		stats.ByType[t] = 0
	}
	if len(facets) == 0 {
		return stats, nil
	}

	f := facets[0]
	if len(f.Summary) > 0 {
		s := f.Summary[0]
		stats.TotalPlacements = s.Total
		stats.StudentsPlaced = s.StudentsPlaced
		stats.HighestPackage = s.Highest
		stats.AveragePackage = money.New(s.Average.Round(2))
		stats.LowestPackage = s.Lowest
	}
	for _, t := range f.ByType {
		stats.ByType[t.Type] = t.Count
	}
	for _, c := range f.TopCompanies {
		stats.TopCompanies = append(stats.TopCompanies, models.CompanyOffers{
			CompanyName:    c.Name,
			Offers:         c.Offers,
			HighestPackage: c.Highest,
		})
	}
	return stats, nil
}
