package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/portal-server/internal/audit"
	"github.com/doctorsportal/portal-server/internal/config"
	"github.com/doctorsportal/portal-server/internal/handlers"
	infraRepo "github.com/doctorsportal/portal-server/internal/infra/repository"
	ucbooking "github.com/doctorsportal/portal-server/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	repo := infraRepo.NewBookingMongoRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES
	// ------------------------------
	getAvailabilityUC := ucbooking.NewGetAvailability(repo)
	getAvailabilityPipelineUC := ucbooking.NewGetAvailabilityPipeline(repo)

	createBookingUC := ucbooking.NewCreateBooking(repo, auditDispatcher)
	listBookingsUC := ucbooking.NewListBookings(repo)

	createUserUC := ucbooking.NewCreateUser(repo, auditDispatcher)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		getAvailabilityPipelineUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
	)

	userHandler := handlers.NewUserHandler(createUserUC)

	// ------------------------------
	// ROUTES
	// ------------------------------
	r.GET("/appointmentOptions", availabilityHandler.List)
	r.GET("/v2/appointmentOptions", availabilityHandler.ListV2)

	r.POST("/bookings", bookingHandler.Create)
	r.GET("/bookings", bookingHandler.List)

	r.POST("/users", userHandler.Create)
}
