package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/bloodlink-my/bloodlink/config"
	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/data"
	"github.com/bloodlink-my/bloodlink/internal/service"
)

// ServiceContainer holds all application services and the shared auth
// primitives they were built around.
type ServiceContainer struct {
	Auth          *service.AuthService
	Principals    *service.PrincipalService
	Requests      *service.EventRequestService
	Registrations *service.RegistrationService
	Notifications *service.NotificationService
	Directory     *service.DirectoryService
	Eligibility   *service.EligibilityService

	Codec  *auth.TokenCodec
	Hasher *auth.Hasher
}

// BuildServices wires repositories and auth primitives into the service layer.
func BuildServices(db *sql.DB, cfg *config.AppConfig, logger *slog.Logger) (ServiceContainer, error) {
	accessKey, refreshKey, err := cfg.Auth.DecodeKeys()
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("decode token keys: %w", err)
	}

	codec := auth.NewTokenCodec(accessKey, refreshKey)

	hasherParams := auth.DefaultHasherParams()
	if cfg.IsDev {
		// Lighter KDF so dev logins and seed scripts stay snappy.
		hasherParams.Memory = 8 * 1024
		hasherParams.Time = 1
	}
	hasher := auth.NewHasher(hasherParams, cfg.Auth.KDFWorkers)

	principals := data.NewPrincipalRepo(db)
	sessions := data.NewSessionRepo(db)
	donors := data.NewDonorRepo(db)
	facilities := data.NewFacilityRepo(db)
	organisers := data.NewOrganiserRepo(db)
	admins := data.NewAdminRepo(db)
	notifications := data.NewNotificationRepo(db)
	events := data.NewEventRepo(db)
	requests := data.NewEventRequestRepo(db)
	registrations := data.NewRegistrationRepo(db)
	donations := data.NewDonationRepo(db)
	geo := data.NewGeoRepo(db)

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Principals: principals,
			Sessions:   sessions,
			Codec:      codec,
			Hasher:     hasher,
			TTLs:       cfg.Auth.TTLs(),
		}),
		Principals: service.NewPrincipalService(service.PrincipalServiceOptions{
			Donors:      donors,
			Facilities:  facilities,
			Organisers:  organisers,
			Admins:      admins,
			Credentials: principals,
			Hasher:      hasher,
		}),
		Requests: service.NewEventRequestService(service.EventRequestServiceOptions{
			Requests:      requests,
			Events:        events,
			Notifications: notifications,
			Logger:        logger,
		}),
		Registrations: service.NewRegistrationService(service.RegistrationServiceOptions{
			Registrations: registrations,
			Events:        events,
			Donors:        donors,
			Donations:     donations,
		}),
		Notifications: service.NewNotificationService(notifications),
		Directory: service.NewDirectoryService(service.DirectoryServiceOptions{
			Geo:        geo,
			Facilities: facilities,
			Events:     events,
		}),
		Eligibility: service.NewEligibilityService(service.EligibilityServiceOptions{
			Donors:        donors,
			Notifications: notifications,
			Logger:        logger,
		}),
		Codec:  codec,
		Hasher: hasher,
	}, nil
}
