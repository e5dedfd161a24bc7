package app

import (
	"net/http"

	"github.com/Raimguhinov/morrow-go/internal/auth"
	appcaldav "github.com/Raimguhinov/morrow-go/internal/caldav"
	"github.com/Raimguhinov/morrow-go/internal/config"
	mwlogger "github.com/Raimguhinov/morrow-go/internal/delivery/http/middleware/logger"
	v1 "github.com/Raimguhinov/morrow-go/internal/delivery/http/v1"
	"github.com/Raimguhinov/morrow-go/internal/store"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/ceres919/go-webdav/caldav"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(
	l *logger.Logger,
	cfg *config.Config,
	alarms *store.AlarmStore,
	drafts *store.DraftStore,
) http.Handler {
	for _, method := range []string{
		"PROPFIND",
		"PROPPATCH",
		"REPORT",
		"MKCOL",
		"COPY",
		"MOVE",
		"OPTIONS",
	} {
		chi.RegisterMethod(method)
	}

	s := chi.NewRouter()
	s.Use(middleware.RequestID)
	s.Use(mwlogger.New(l))
	s.Use(middleware.Recoverer)
	s.Use(corsMiddleware(cfg))

	if cfg.HTTP.User != "" {
		authProvider, err := auth.NewFromURL(cfg, cfg.HTTP.AuthURL)
		if err != nil {
			l.Error("app - SetupRouter - auth.NewFromURL", logger.Err(err))
		} else {
			s.Use(authProvider.Middleware())
		}
	}

	upBackend := &userPrincipalBackend{}

	caldavBackend, err := appcaldav.New(upBackend, cfg.App.CalDAVPrefix, alarms)
	if err != nil {
		l.Error("app - SetupRouter - caldav.New", logger.Err(err))
	}

	caldavHandler := caldav.Handler{Backend: caldavBackend}
	handler := davHandler{
		upBackend:     upBackend,
		caldavBackend: caldavBackend,
	}

	s.Mount("/api/v1", v1.NewRouter(l, alarms, drafts))
	s.Mount("/", &handler)
	s.Mount("/.well-known/caldav", &caldavHandler)
	s.Mount("/{user}/calendars", &caldavHandler)

	return s
}
