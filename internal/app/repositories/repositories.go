package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository   *StudentRepository
	FacultyRepository   *FacultyRepository
	CompanyRepository   *CompanyRepository
	PlacementRepository *PlacementRepository
	TPCMemberRepository *TPCMemberRepository
}

// NewRepositories initializes all repositories. The placement repository
// links through the student and company repositories. observe receives
// unexpected storage failures and may be nil.
func NewRepositories(database *mongo.Database, observe ErrorObserver) *Repositories {
	students := NewStudentRepository(database, observe)
	companies := NewCompanyRepository(database, observe)
	return &Repositories{
		StudentRepository:   students,
		FacultyRepository:   NewFacultyRepository(database, observe),
		CompanyRepository:   companies,
		PlacementRepository: NewPlacementRepository(database, NewPlacementLinker(students, companies), observe),
		TPCMemberRepository: NewTPCMemberRepository(database, observe),
	}
}
