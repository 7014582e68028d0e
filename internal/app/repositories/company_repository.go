package repositories

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/db"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

const (
	companyResource    = "Company"
	yearlyDataResource = "Yearly data"
)

// CompanyFilter narrows company lists.
type CompanyFilter struct {
	ListOptions
	Industry string `form:"industry"`
	Year     *int   `form:"year"`
	Branch   string `form:"branch"`
}

func (f CompanyFilter) toBSON() bson.M {
	filter := bson.M{}
	f.activeClause(filter)
	if f.Industry != "" {
		filter["industry"] = equalsInsensitive(f.Industry)
	}
	if f.Year != nil {
		filter["yearlyData.year"] = *f.Year
	}
	if f.Branch != "" {
		filter["yearlyData.allowedBranches"] = equalsInsensitive(f.Branch)
	}
	searchClause(filter, f.Search, "name", "industry", "location")
	return filter
}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	coll collection
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(database *mongo.Database, observe ErrorObserver) *CompanyRepository {
	return &CompanyRepository{coll: newCollection(database, db.CompaniesCollection, companyResource, observe)}
}

// List returns one page of companies matching filter.
func (r *CompanyRepository) List(ctx context.Context, filter CompanyFilter, page, limit int) ([]models.Company, int64, error) {
	sort := filter.sort("name", "industry", "createdAt", "updatedAt")
	items, total, err := findPage[models.Company](ctx, r.coll, filter.toBSON(), sort, page, limit)
	if err != nil {
		return nil, 0, r.coll.translate(err, "list")
	}
	return items, total, nil
}

// GetByID retrieves a company by hex id.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findByID[models.Company](ctx, r.coll, oid)
}

// FindByName matches the whole name case-insensitively.
func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var c models.Company
	err := r.coll.FindOne(ctx, bson.M{"name": equalsInsensitive(name)}).Decode(&c)
	if err != nil {
		return nil, r.coll.translate(err, "find")
	}
	return &c, nil
}

// Create inserts a new company and sets its id and timestamps.
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	if year, dup := models.DuplicateYear(c.YearlyData); dup {
		return apperrors.NewFieldError("yearlyData", duplicateYearMessage(year))
	}
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt, c.UpdatedAt = now, now
	if c.YearlyData == nil {
		c.YearlyData = []models.YearlyData{}
	}
	models.SortYearlyData(c.YearlyData)

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return r.coll.translate(err, "create")
	}
	return nil
}

// Update replaces the stored document with c.
func (r *CompanyRepository) Update(ctx context.Context, c *models.Company) error {
	if year, dup := models.DuplicateYear(c.YearlyData); dup {
		return apperrors.NewFieldError("yearlyData", duplicateYearMessage(year))
	}
	c.UpdatedAt = time.Now().UTC()
	if c.YearlyData == nil {
		c.YearlyData = []models.YearlyData{}
	}
	models.SortYearlyData(c.YearlyData)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(companyResource)
	}
	return nil
}

// AddYearlyData appends an entry. The year guard is part of the update filter
// so concurrent adds of the same year cannot both succeed.
func (r *CompanyRepository) AddYearlyData(ctx context.Context, id string, entry models.YearlyData) (*models.Company, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid, "yearlyData.year": bson.M{"$ne": entry.Year}}
	update := bson.M{
		"$push": bson.M{"yearlyData": bson.M{"$each": bson.A{entry}, "$sort": bson.M{"year": -1}}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		if err := r.exists(ctx, oid); err != nil {
			return nil, err
		}
		return nil, apperrors.NewDuplicateKeyError("yearlyData.year", nil)
	}
	return findByID[models.Company](ctx, r.coll, oid)
}

// UpdateYearlyData replaces the entry for year. Moving an entry to a year
// that already exists is rejected.
func (r *CompanyRepository) UpdateYearlyData(ctx context.Context, id string, year int, entry models.YearlyData) (*models.Company, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	conditions := bson.A{bson.M{"_id": oid}, bson.M{"yearlyData.year": year}}
	if entry.Year != year {
		conditions = append(conditions, bson.M{"yearlyData.year": bson.M{"$ne": entry.Year}})
	}
	update := bson.M{"$set": bson.M{"yearlyData.$[entry]": entry, "updatedAt": time.Now().UTC()}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"entry.year": year}},
	})

	res, err := r.coll.UpdateOne(ctx, bson.M{"$and": conditions}, update, opts)
	if err != nil {
		return nil, r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		company, err := findByID[models.Company](ctx, r.coll, oid)
		if err != nil {
			return nil, err
		}
		if !hasYear(company.YearlyData, year) {
			return nil, apperrors.NewNotFoundError(yearlyDataResource)
		}
		return nil, apperrors.NewDuplicateKeyError("yearlyData.year", nil)
	}

	if entry.Year != year {
		resort := bson.M{"$push": bson.M{"yearlyData": bson.M{"$each": bson.A{}, "$sort": bson.M{"year": -1}}}}
		if _, err := r.coll.UpdateByID(ctx, oid, resort); err != nil {
			return nil, r.coll.translate(err, "update")
		}
	}
	return findByID[models.Company](ctx, r.coll, oid)
}

// DeleteYearlyData removes the entry for year.
func (r *CompanyRepository) DeleteYearlyData(ctx context.Context, id string, year int) (*models.Company, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid, "yearlyData.year": year}
	update := bson.M{
		"$pull": bson.M{"yearlyData": bson.M{"year": year}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		if err := r.exists(ctx, oid); err != nil {
			return nil, err
		}
		return nil, apperrors.NewNotFoundError(yearlyDataResource)
	}
	return findByID[models.Company](ctx, r.coll, oid)
}

// UpdateLogo stores the public URL of the company logo.
func (r *CompanyRepository) UpdateLogo(ctx context.Context, id string, logoURL string) (*models.Company, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return updateFields[models.Company](ctx, r.coll, oid, bson.M{"logoUrl": logoURL})
}

// SoftDelete marks the company inactive.
func (r *CompanyRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, false)
}

// Restore reverses SoftDelete.
func (r *CompanyRepository) Restore(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, true)
}

// HardDelete removes the company permanently. Placements keep their
// denormalized company name.
func (r *CompanyRepository) HardDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.deleteByID(ctx, oid)
}

func (r *CompanyRepository) exists(ctx context.Context, oid primitive.ObjectID) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return r.coll.translate(err, "count")
	}
	if n == 0 {
		return apperrors.NewNotFoundError(companyResource)
	}
	return nil
}

func hasYear(entries []models.YearlyData, year int) bool {
	for _, e := range entries {
		if e.Year == year {
			return true
		}
	}
	return false
}

func duplicateYearMessage(year int) string {
	return "year " + strconv.Itoa(year) + " appears more than once"
}
