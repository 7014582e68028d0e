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
)

const facultyResource = "Faculty"

// FacultyFilter narrows faculty lists.
type FacultyFilter struct {
	ListOptions
	Department  string               `form:"department"`
	Designation string               `form:"designation"`
	Status      models.FacultyStatus `form:"status" binding:"omitempty,oneof=active inactive retired terminated"`
	Role        models.Role          `form:"role" binding:"omitempty,oneof=faculty admin"`
}

func (f FacultyFilter) toBSON() bson.M {
	filter := bson.M{}
	f.activeClause(filter)
	if f.Department != "" {
		filter["department"] = equalsInsensitive(f.Department)
	}
	if f.Designation != "" {
		filter["designation"] = equalsInsensitive(f.Designation)
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	searchClause(filter, f.Search, "name", "email", "employeeId", "department", "contactNumber")
	return filter
}

// FacultyRepository handles faculty database operations. Administrators live
// in the same collection with role admin.
type FacultyRepository struct {
	coll collection
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(database *mongo.Database, observe ErrorObserver) *FacultyRepository {
	return &FacultyRepository{coll: newCollection(database, db.FacultyCollection, facultyResource, observe)}
}

// List returns one page of faculty matching filter.
func (r *FacultyRepository) List(ctx context.Context, filter FacultyFilter, page, limit int) ([]models.Faculty, int64, error) {
	sort := filter.sort("name", "department", "designation", "experience", "createdAt")
	items, total, err := findPage[models.Faculty](ctx, r.coll, filter.toBSON(), sort, page, limit)
	if err != nil {
		return nil, 0, r.coll.translate(err, "list")
	}
	return items, total, nil
}

// GetByID retrieves a faculty member by hex id.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findByID[models.Faculty](ctx, r.coll, oid)
}

// GetByEmail retrieves a faculty member by (case-insensitive) email.
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	var f models.Faculty
	err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&f)
	if err != nil {
		return nil, r.coll.translate(err, "find")
	}
	return &f, nil
}

// Create inserts a new faculty member and sets its id and timestamps.
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	normalizeFaculty(f)
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.CreatedAt, f.UpdatedAt = now, now
	if f.Role == "" {
		f.Role = models.RoleFaculty
	}
	if f.Status == "" {
		f.Status = models.FacultyActive
	}

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return r.coll.translate(err, "create")
	}
	return nil
}

// Update replaces the stored document with f.
func (r *FacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	normalizeFaculty(f)
	f.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(facultyResource)
	}
	return nil
}

// UpdateStatus sets the employment status.
func (r *FacultyRepository) UpdateStatus(ctx context.Context, id string, status models.FacultyStatus) (*models.Faculty, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return updateFields[models.Faculty](ctx, r.coll, oid, bson.M{"status": status})
}

// UpdatePassword stores a new password hash.
func (r *FacultyRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = updateFields[models.Faculty](ctx, r.coll, oid, bson.M{"password": hash})
	return err
}

// TouchLastLogin records a successful login.
func (r *FacultyRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"lastLogin": at}})
	return r.coll.translate(err, "update")
}

// CountAdmins counts active administrators.
func (r *FacultyRepository) CountAdmins(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"role": models.RoleAdmin, "isActive": true})
	if err != nil {
		return 0, r.coll.translate(err, "count")
	}
	return n, nil
}

// SoftDelete marks the faculty member inactive.
func (r *FacultyRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, false)
}

// Restore reverses SoftDelete.
func (r *FacultyRepository) Restore(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, true)
}

// HardDelete removes the faculty member permanently.
func (r *FacultyRepository) HardDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.deleteByID(ctx, oid)
}

func normalizeFaculty(f *models.Faculty) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.ContactNumber = strings.TrimSpace(f.ContactNumber)
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.Department = strings.TrimSpace(f.Department)
	f.Designation = strings.TrimSpace(f.Designation)
}
