package models

// Role is the account role carried in access tokens.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// StudentStatus is the approval state of a self-registered student.
type StudentStatus string

const (
	StudentPending  StudentStatus = "pending"
	StudentApproved StudentStatus = "approved"
	StudentRejected StudentStatus = "rejected"
)

func (s StudentStatus) IsValid() bool {
	return s == StudentPending || s == StudentApproved || s == StudentRejected
}

// FacultyStatus is the employment state of a faculty member.
type FacultyStatus string

const (
	FacultyActive     FacultyStatus = "active"
	FacultyInactive   FacultyStatus = "inactive"
	FacultyRetired    FacultyStatus = "retired"
	FacultyTerminated FacultyStatus = "terminated"
)

func (s FacultyStatus) IsValid() bool {
	switch s {
	case FacultyActive, FacultyInactive, FacultyRetired, FacultyTerminated:
		return true
	}
	return false
}

// PlacementType enumerates offer kinds.
type PlacementType string

const (
	PlacementFTE        PlacementType = "FTE"
	PlacementInternship PlacementType = "Internship"
	PlacementInternFTE  PlacementType = "Intern+FTE"
	PlacementPPO        PlacementType = "PPO"
)

// PlacementTypes lists every placement type.
var PlacementTypes = []PlacementType{PlacementFTE, PlacementInternship, PlacementInternFTE, PlacementPPO}

// InterviewMode is how a company conducts its drive.
type InterviewMode string

const (
	InterviewOnline  InterviewMode = "online"
	InterviewOffline InterviewMode = "offline"
	InterviewHybrid  InterviewMode = "hybrid"
)

// TPCCategory separates student and faculty members of the placement cell.
type TPCCategory string

const (
	TPCStudent TPCCategory = "student"
	TPCFaculty TPCCategory = "faculty"
)
