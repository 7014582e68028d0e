package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestActiveClause(t *testing.T) {
	tests := []struct {
		name    string
		opts    ListOptions
		want    interface{}
		present bool
	}{
		{"default shows active only", ListOptions{}, true, true},
		{"include inactive drops the clause", ListOptions{IncludeInactive: true}, nil, false},
		{"explicit false", ListOptions{IsActive: boolPtr(false)}, false, true},
		{"explicit wins over include", ListOptions{IsActive: boolPtr(true), IncludeInactive: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := bson.M{}
			tt.opts.activeClause(filter)
			v, ok := filter["isActive"]
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestSortFallsBackToCreatedAt(t *testing.T) {
	opts := ListOptions{SortBy: "password", SortOrder: "asc"}
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}, opts.sort("name"))

	opts = ListOptions{SortBy: "name"}
	assert.Equal(t, bson.D{{Key: "name", Value: -1}, {Key: "_id", Value: -1}}, opts.sort("name"))
}

func TestSearchClauseEscapesInput(t *testing.T) {
	filter := bson.M{}
	searchClause(filter, "a.b*", "name", "email")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}}, or[0])

	empty := bson.M{}
	searchClause(empty, "   ", "name")
	assert.NotContains(t, empty, "$or")
}

func TestEqualsInsensitiveIsAnchored(t *testing.T) {
	re := equalsInsensitive(" Acme (India) ")
	assert.Equal(t, `^Acme \(India\)$`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseObjectID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseObjectID("not-an-id")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidID))
}

func TestTranslate(t *testing.T) {
	var observed []string
	students := collection{resource: "Student", observe: func(resource, op string) {
		observed = append(observed, resource+"/"+op)
	}}

	assert.NoError(t, students.translate(nil, "find"))

	err := students.translate(mongo.ErrNoDocuments, "find")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Student not found", err.Error())

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: db.students index: phone_unique dup key: { phone: "9999999999" }`,
	}}}
	err = students.translate(dup, "create")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindDuplicateKey, appErr.Kind)
	assert.Equal(t, "phone", appErr.Field)

	already := apperrors.NewForbiddenError("no")
	assert.Same(t, already, students.translate(already, "find"))
	assert.Empty(t, observed, "expected outcomes are not storage failures")

	other := students.translate(errors.New("socket closed"), "find")
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(other))
	assert.Equal(t, []string{"Student/find"}, observed)
}

func TestTranslateWithoutObserver(t *testing.T) {
	companies := collection{resource: "Company"}

	err := companies.translate(errors.New("socket closed"), "list")

	assert.EqualError(t, err, "list Company: socket closed")
}

func TestStudentFilterToBSON(t *testing.T) {
	f := StudentFilter{
		ListOptions: ListOptions{Search: "asha"},
		Branch:      "cse",
		Batch:       intPtr(2025),
		Status:      models.StudentApproved,
	}
	filter := f.toBSON()

	assert.Equal(t, true, filter["isActive"])
	assert.Equal(t, equalsInsensitive("cse"), filter["branch"])
	assert.Equal(t, 2025, filter["batch"])
	assert.Equal(t, models.StudentApproved, filter["status"])
	assert.Len(t, filter["$or"], 5)
}

func TestPlacementFilterToBSON(t *testing.T) {
	studentID := primitive.NewObjectID()
	f := PlacementFilter{
		ListOptions:   ListOptions{IncludeInactive: true},
		CompanyName:   "acme",
		PlacementType: models.PlacementInternFTE,
		ScholarNumber: "s1",
		MinPackage:    "500000",
		MaxPackage:    "1500000.50",
		StudentID:     studentID.Hex(),
	}
	filter, err := f.toBSON()
	require.NoError(t, err)

	assert.NotContains(t, filter, "isActive")
	assert.Equal(t, equalsInsensitive("acme"), filter["companyName"])
	assert.Equal(t, "S1", filter["scholarNumber"])
	assert.Equal(t, studentID, filter["student"])
	rng, ok := filter["package"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, rng, "$gte")
	assert.Contains(t, rng, "$lte")

	_, err = PlacementFilter{MinPackage: "lots"}.toBSON()
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = PlacementFilter{StudentID: "xyz"}.toBSON()
	assert.True(t, errors.Is(err, apperrors.ErrInvalidID))
}

func TestCompanyAndTPCFilters(t *testing.T) {
	c := CompanyFilter{Year: intPtr(2024), Branch: "ECE"}.toBSON()
	assert.Equal(t, 2024, c["yearlyData.year"])
	assert.Equal(t, equalsInsensitive("ECE"), c["yearlyData.allowedBranches"])

	m := TPCMemberFilter{Session: "2024-25", Category: models.TPCStudent}.toBSON()
	assert.Equal(t, "2024-25", m["sessions"])
	assert.Equal(t, models.TPCStudent, m["category"])
}

func TestStatsPipelineMatchesBatch(t *testing.T) {
	pipeline := statsPipeline(intPtr(2025))
	require.Len(t, pipeline, 2)
	match := pipeline[0][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "isActive", Value: true}, {Key: "batch", Value: 2025}}, match)

	all := statsPipeline(nil)[0][0].Value.(bson.D)
	assert.Len(t, all, 1)
}
