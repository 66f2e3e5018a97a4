package httpx

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// RouterServices holds everything the HTTP router wires together.
type RouterServices struct {
	Auth          *service.AuthService
	Principals    *service.PrincipalService
	Requests      *service.EventRequestService
	Registrations *service.RegistrationService
	Notifications *service.NotificationService
	Directory     *service.DirectoryService
	Codec         *auth.TokenCodec
	DB            *sql.DB
	Logger        *slog.Logger
}

// NewRouter builds the /api surface. Middleware order, outermost first:
// request id, logging, recovery, the auth pipeline, then metrics; role gates
// sit on individual routes. Metrics wrap the mux directly because the mux
// stamps the matched route pattern on the request instance it is handed, and
// only the auth pipeline's derived request reaches that far.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Auth: services.Auth, Principals: services.Principals}
	principalHandlers := &PrincipalHandlers{Principals: services.Principals}
	eventHandlers := &EventHandlers{Requests: services.Requests, Directory: services.Directory}
	registrationHandlers := &RegistrationHandlers{Registrations: services.Registrations}
	notificationHandlers := &NotificationHandlers{Notifications: services.Notifications}
	directoryHandlers := &DirectoryHandlers{Directory: services.Directory}
	healthHandlers := &HealthHandlers{DB: services.DB}

	// Public.
	mux.HandleFunc("POST /api/user-login", authHandlers.Login(model.RoleDonor))
	mux.HandleFunc("POST /api/facility-login", authHandlers.Login(model.RoleFacility))
	mux.HandleFunc("POST /api/organiser-login", authHandlers.Login(model.RoleOrganiser))
	mux.HandleFunc("POST /api/admin-login", authHandlers.Login(model.RoleAdmin))
	mux.HandleFunc("POST /api/user-register", principalHandlers.RegisterDonor)
	mux.HandleFunc("POST /api/facility-register", principalHandlers.RegisterFacility)
	mux.HandleFunc("POST /api/organiser-register", principalHandlers.RegisterOrganiser)
	mux.HandleFunc("POST /api/admin-register", principalHandlers.RegisterAdmin)
	mux.HandleFunc("POST /api/refresh", authHandlers.Refresh)
	mux.HandleFunc("GET /api/states", directoryHandlers.States)
	mux.HandleFunc("GET /api/districts", directoryHandlers.Districts)
	mux.HandleFunc("GET /api/bloodtypes", directoryHandlers.BloodTypes)
	mux.HandleFunc("GET /api/facilities", directoryHandlers.Facilities)
	mux.HandleFunc("GET /api/events", eventHandlers.ListEvents)
	mux.HandleFunc("GET /api/events/future", eventHandlers.ListFutureEvents)

	// Authenticated, any role.
	mux.Handle("POST /api/logout", RequireAuth(http.HandlerFunc(authHandlers.Logout)))
	mux.Handle("POST /api/logout-all", RequireAuth(http.HandlerFunc(authHandlers.LogoutAll)))
	mux.Handle("GET /api/get-credentials", RequireAuth(http.HandlerFunc(authHandlers.Credentials)))
	mux.Handle("GET /api/notifications", RequireAuth(http.HandlerFunc(notificationHandlers.List)))
	mux.Handle("PATCH /api/notifications/{id}/read", RequireAuth(http.HandlerFunc(notificationHandlers.MarkRead)))
	mux.Handle("GET /api/new-event-requests", RequireAuth(http.HandlerFunc(eventHandlers.ListNewRequests)))
	mux.Handle("GET /api/change-event-requests", RequireAuth(http.HandlerFunc(eventHandlers.ListChangeRequests)))
	mux.Handle("GET /api/events/{id}/registrations", RequireAuth(http.HandlerFunc(registrationHandlers.ListByEvent)))

	// Donor.
	donor := RequireRole(model.RoleDonor)
	mux.Handle("PATCH /api/user", donor(http.HandlerFunc(principalHandlers.UpdateDonor)))
	mux.Handle("POST /api/registration/register", donor(http.HandlerFunc(registrationHandlers.Register)))
	mux.Handle("GET /api/registrations", donor(http.HandlerFunc(registrationHandlers.ListMine)))
	mux.Handle("GET /api/donation-history", donor(http.HandlerFunc(registrationHandlers.DonationHistory)))

	// Facility.
	facility := RequireRole(model.RoleFacility)
	mux.Handle("PATCH /api/facility", facility(http.HandlerFunc(principalHandlers.UpdateFacility)))
	mux.Handle("PATCH /api/new-event-request", facility(http.HandlerFunc(eventHandlers.ResolveNewRequest)))
	mux.Handle("PATCH /api/change-event-request", facility(http.HandlerFunc(eventHandlers.ResolveChangeRequest)))
	mux.Handle("PATCH /api/registration", facility(http.HandlerFunc(registrationHandlers.UpdateStatus)))

	// Organiser.
	organiser := RequireRole(model.RoleOrganiser)
	mux.Handle("PATCH /api/organiser", organiser(http.HandlerFunc(principalHandlers.UpdateOrganiser)))
	mux.Handle("POST /api/new-event-request", organiser(http.HandlerFunc(eventHandlers.CreateNewRequest)))
	mux.Handle("POST /api/change-event-request", organiser(http.HandlerFunc(eventHandlers.CreateChangeRequest)))

	// Admin.
	admin := RequireRole(model.RoleAdmin)
	mux.Handle("PATCH /api/admin", admin(http.HandlerFunc(principalHandlers.UpdateAdmin)))

	// Operational.
	mux.HandleFunc("GET /healthz", healthHandlers.Healthz)
	mux.Handle("GET /metrics", MetricsHandler())

	var handler http.Handler = Instrument(mux)
	handler = Authenticate(services.Codec)(handler)
	handler = Recover(services.Logger)(handler)
	handler = Logging(services.Logger)(handler)
	handler = TagRequestID(handler)
	return handler
}
