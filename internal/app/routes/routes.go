package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/controllers"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/middleware"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Health    *controllers.HealthController
	Auth      *controllers.AuthController
	Student   *controllers.StudentController
	Faculty   *controllers.FacultyController
	Company   *controllers.CompanyController
	Placement *controllers.PlacementController
	TPCMember *controllers.TPCMemberController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	api := router.Group("/api")

	api.GET("/health", ctrl.Health.Health)

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), ctrl.Auth.Login)
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/refresh", ctrl.Auth.RefreshToken)
	}
	authed := auth.Group("", authMiddleware.JWTAuth())
	{
		authed.POST("/logout", ctrl.Auth.Logout)
		authed.GET("/me", ctrl.Auth.Me)
		authed.PUT("/change-password", ctrl.Auth.ChangePassword)
	}

	// TPC roster reads are public
	tpc := api.Group("/tpc-members")
	{
		tpc.GET("", ctrl.TPCMember.ListMembers)
		tpc.GET("/:id", ctrl.TPCMember.GetMemberByID)
	}

	protected := api.Group("", authMiddleware.JWTAuth())
	admin := authMiddleware.AdminOnly()
	staff := authMiddleware.RequireRole(models.RoleAdmin, models.RoleFaculty)

	// --- Students ---
	students := protected.Group("/students")
	{
		students.GET("", staff, ctrl.Student.ListStudents)
		students.GET("/:id", authMiddleware.SelfOrAdmin("id", "studentId"), ctrl.Student.GetStudentByID)
		students.GET("/:id/placements",
			authMiddleware.SelfOrAdmin("id", "studentId"),
			authMiddleware.RequireApproval(),
			ctrl.Student.ListStudentPlacements)

		students.POST("", admin, ctrl.Student.CreateStudent)
		students.PUT("/:id", admin, ctrl.Student.UpdateStudent)
		students.PATCH("/:id/status", admin, ctrl.Student.UpdateStudentStatus)
		students.DELETE("/:id", admin, ctrl.Student.DeleteStudent)
		students.PATCH("/:id/restore", admin, ctrl.Student.RestoreStudent)
		students.DELETE("/:id/permanent", admin, ctrl.Student.DeleteStudentPermanently)
	}

	// --- Faculty ---
	faculty := protected.Group("/faculty")
	{
		faculty.GET("", staff, ctrl.Faculty.ListFaculty)
		faculty.GET("/:id", authMiddleware.SelfOrAdmin("id", "facultyId"), ctrl.Faculty.GetFacultyByID)

		faculty.POST("", admin, ctrl.Faculty.CreateFaculty)
		faculty.PUT("/:id", admin, ctrl.Faculty.UpdateFaculty)
		faculty.PATCH("/:id/status", admin, ctrl.Faculty.UpdateFacultyStatus)
		faculty.DELETE("/:id", admin, ctrl.Faculty.DeleteFaculty)
		faculty.PATCH("/:id/restore", admin, ctrl.Faculty.RestoreFaculty)
		faculty.DELETE("/:id/permanent", admin, ctrl.Faculty.DeleteFacultyPermanently)
	}

	// --- Companies ---
	companies := protected.Group("/companies")
	{
		companies.GET("", authMiddleware.RequireApproval(), ctrl.Company.ListCompanies)
		companies.GET("/:id", authMiddleware.RequireApproval(), ctrl.Company.GetCompanyByID)

		companies.POST("", admin, ctrl.Company.CreateCompany)
		companies.PUT("/:id", admin, ctrl.Company.UpdateCompany)
		companies.DELETE("/:id", admin, ctrl.Company.DeleteCompany)
		companies.PATCH("/:id/restore", admin, ctrl.Company.RestoreCompany)
		companies.DELETE("/:id/permanent", admin, ctrl.Company.DeleteCompanyPermanently)
		companies.POST("/:id/yearly-data", admin, ctrl.Company.AddYearlyData)
		companies.PUT("/:id/yearly-data/:year", admin, ctrl.Company.UpdateYearlyData)
		companies.DELETE("/:id/yearly-data/:year", admin, ctrl.Company.DeleteYearlyData)
		companies.POST("/:id/logo", admin, ctrl.Company.UploadLogo)
	}

	// --- Placements ---
	placements := protected.Group("/placements")
	{
		placements.GET("", ctrl.Placement.ListPlacements)
		placements.GET("/stats", ctrl.Placement.GetStats)
		placements.GET("/:id", ctrl.Placement.GetPlacementByID)

		placements.POST("", admin, ctrl.Placement.CreatePlacement)
		placements.PUT("/:id", admin, ctrl.Placement.UpdatePlacement)
		placements.DELETE("/:id", admin, ctrl.Placement.DeletePlacement)
		placements.PATCH("/:id/restore", admin, ctrl.Placement.RestorePlacement)
		placements.DELETE("/:id/permanent", admin, ctrl.Placement.DeletePlacementPermanently)
	}

	// --- TPC roster writes ---
	tpcWrite := protected.Group("/tpc-members", admin)
	{
		tpcWrite.POST("", ctrl.TPCMember.CreateMember)
		tpcWrite.PUT("/:id", ctrl.TPCMember.UpdateMember)
		tpcWrite.DELETE("/:id", ctrl.TPCMember.DeleteMember)
		tpcWrite.PATCH("/:id/restore", ctrl.TPCMember.RestoreMember)
		tpcWrite.DELETE("/:id/permanent", ctrl.TPCMember.DeleteMemberPermanently)
	}

	router.NoRoute(middleware.NotFound())
}
