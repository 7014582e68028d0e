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

const studentResource = "Student"

// StudentFilter narrows student lists.
type StudentFilter struct {
	ListOptions
	Branch string               `form:"branch"`
	Batch  *int                 `form:"batch"`
	Degree string               `form:"degree"`
	Status models.StudentStatus `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Gender string               `form:"gender" binding:"omitempty,oneof=male female other"`
}

func (f StudentFilter) toBSON() bson.M {
	filter := bson.M{}
	f.activeClause(filter)
	if f.Branch != "" {
		filter["branch"] = equalsInsensitive(f.Branch)
	}
	if f.Batch != nil {
		filter["batch"] = *f.Batch
	}
	if f.Degree != "" {
		filter["degree"] = equalsInsensitive(f.Degree)
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Gender != "" {
		filter["gender"] = f.Gender
	}
	searchClause(filter, f.Search, "name", "email", "scholarNumber", "phone", "branch")
	return filter
}

// StudentRepository handles student database operations
type StudentRepository struct {
	coll collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *mongo.Database, observe ErrorObserver) *StudentRepository {
	return &StudentRepository{coll: newCollection(database, db.StudentsCollection, studentResource, observe)}
}

// List returns one page of students matching filter.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, page, limit int) ([]models.Student, int64, error) {
	sort := filter.sort("name", "scholarNumber", "batch", "branch", "cgpa", "createdAt")
	items, total, err := findPage[models.Student](ctx, r.coll, filter.toBSON(), sort, page, limit)
	if err != nil {
		return nil, 0, r.coll.translate(err, "list")
	}
	return items, total, nil
}

// GetByID retrieves a student by hex id, active or not.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findByID[models.Student](ctx, r.coll, oid)
}

// GetByEmail retrieves a student by (case-insensitive) email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var s models.Student
	err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&s)
	if err != nil {
		return nil, r.coll.translate(err, "find")
	}
	return &s, nil
}

// FindByScholarNumber is an exact lookup on the stored (upper-cased) scholar number.
func (r *StudentRepository) FindByScholarNumber(ctx context.Context, scholarNumber string) (*models.Student, error) {
	var s models.Student
	err := r.coll.FindOne(ctx, bson.M{"scholarNumber": strings.ToUpper(strings.TrimSpace(scholarNumber))}).Decode(&s)
	if err != nil {
		return nil, r.coll.translate(err, "find")
	}
	return &s, nil
}

// Create inserts a new student and sets its id and timestamps.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	normalizeStudent(s)
	now := time.Now().UTC()
	s.ID = primitive.NewObjectID()
	s.CreatedAt, s.UpdatedAt = now, now
	if s.Role == "" {
		s.Role = models.RoleStudent
	}

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return r.coll.translate(err, "create")
	}
	return nil
}

// Update replaces the stored document with s.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	normalizeStudent(s)
	s.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return r.coll.translate(err, "update")
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError(studentResource)
	}
	return nil
}

// UpdateStatus sets the approval status and its remarks.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id string, status models.StudentStatus, remarks string) (*models.Student, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return updateFields[models.Student](ctx, r.coll, oid, bson.M{"status": status, "statusRemarks": remarks})
}

// UpdatePassword stores a new password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = updateFields[models.Student](ctx, r.coll, oid, bson.M{"password": hash})
	return err
}

// TouchLastLogin records a successful login.
func (r *StudentRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"lastLogin": at}})
	return r.coll.translate(err, "update")
}

// SoftDelete marks the student inactive.
func (r *StudentRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, false)
}

// Restore reverses SoftDelete.
func (r *StudentRepository) Restore(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.setActive(ctx, oid, true)
}

// HardDelete removes the student permanently.
func (r *StudentRepository) HardDelete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	return r.coll.deleteByID(ctx, oid)
}

func normalizeStudent(s *models.Student) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Phone = strings.TrimSpace(s.Phone)
	s.ScholarNumber = strings.ToUpper(strings.TrimSpace(s.ScholarNumber))
	s.Branch = strings.TrimSpace(s.Branch)
	s.Degree = strings.TrimSpace(s.Degree)
	s.Address = strings.TrimSpace(s.Address)
}
