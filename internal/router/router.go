package router

import (
	"context"
	"net/http"
	"time"

	mem "petconnect/internal/adapters/storage/memory"
	"petconnect/internal/domain/engagement"
	"petconnect/internal/domain/feed"
	"petconnect/internal/domain/listings"
	"petconnect/internal/domain/messaging"
	"petconnect/internal/domain/notifications"
	"petconnect/internal/domain/pets"
	"petconnect/internal/domain/places"
	"petconnect/internal/domain/reports"
	"petconnect/internal/domain/session"
	"petconnect/internal/domain/stories"
	"petconnect/internal/domain/users"
	"petconnect/internal/middleware"
	"petconnect/internal/platform/logger"
	"petconnect/internal/ports/auth"
	"petconnect/internal/ports/biogen"
	"petconnect/internal/ports/capture"
	"petconnect/internal/ports/share"
	"petconnect/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Log logger.Logger

	// Colaboradores externos, todos opcionales: sin ellos las features
	// que los usan degradan con errores explícitos, no con panics.
	Biogen biogen.Generator
	Sharer share.Sharer
	Camera capture.Camera
}

// petDirectory adapta pets.Service a lo que el feed necesita,
// sin acoplar los paquetes entre sí.
type petDirectory struct {
	svc *pets.Service
}

func (d petDirectory) OwnedPet(ctx context.Context, ownerUserID, petID string) (feed.PetInfo, error) {
	p, err := d.svc.GetByID(ctx, petID)
	if err != nil {
		return feed.PetInfo{}, err
	}
	if p.OwnerUserID != ownerUserID {
		return feed.PetInfo{}, pets.ErrForbidden
	}
	return feed.PetInfo{ID: p.ID, Name: p.Name, Breed: p.Breed, Avatar: p.Avatar}, nil
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{App: "petconnect"})
	}

	// Repos in-memory, sembrados con los fixtures del prototipo.
	fx := seed.Load(time.Now())

	userRepo := mem.NewUserRepo(fx.Users)
	petRepo := mem.NewPetRepo(fx.Pets)
	postRepo := mem.NewPostRepo(fx.Posts)
	storyRepo := mem.NewStoryRepo(fx.Stories)
	reportRepo := mem.NewReportRepo(fx.Reports)
	listingRepo := mem.NewListingRepo(fx.Listings)
	placeRepo := mem.NewPlaceRepo(fx.Places)
	convRepo := mem.NewConversationRepo(fx.Conversations)
	notifRepo := mem.NewNotificationRepo(fx.Notifications)
	likeRepo := mem.NewLikeRepo()
	sessRepo := mem.NewSessionRepo()

	// Services por módulo. El orden importa: users se arma al final de los
	// refrescables porque propaga identidad hacia ellos.
	petsSvc := pets.NewService(petRepo, opts.Biogen, log)
	feedSvc := feed.NewService(postRepo, petDirectory{svc: petsSvc}, log)
	reportsSvc := reports.NewService(reportRepo, log)
	listingsSvc := listings.NewService(listingRepo, log)
	placesSvc := places.NewService(placeRepo)
	storiesSvc := stories.NewService(storyRepo)

	usersSvc := users.NewService(userRepo, log, feedSvc, reportsSvc, listingsSvc, storiesSvc)

	engagementSvc := engagement.NewService(likeRepo, usersSvc, map[engagement.Kind]engagement.Target{
		engagement.KindPost:    feedSvc,
		engagement.KindReport:  reportsSvc,
		engagement.KindListing: listingsSvc,
		engagement.KindPlace:   placesSvc,
	}, log)

	messagingSvc := messaging.NewService(convRepo, usersSvc, log)
	notificationsSvc := notifications.NewService(notifRepo, messagingSvc, log)
	sessionSvc := session.NewService(sessRepo, notificationsSvc, log)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, petsSvc, sessionSvc, opts.Camera)
	pets.RegisterRoutes(r, petsSvc, feedSvc)
	feed.RegisterRoutes(r, feedSvc, usersSvc, opts.Sharer)
	stories.RegisterRoutes(r, storiesSvc)
	reports.RegisterRoutes(r, reportsSvc, usersSvc)
	listings.RegisterRoutes(r, listingsSvc, usersSvc)
	places.RegisterRoutes(r, placesSvc)
	engagement.RegisterRoutes(r, engagementSvc)
	messaging.RegisterRoutes(r, messagingSvc)
	notifications.RegisterRoutes(r, notificationsSvc)
	session.RegisterRoutes(r, sessionSvc)

	return r
}
