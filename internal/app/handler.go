package app

import (
	"context"
	"net/http"

	"github.com/Raimguhinov/morrow-go/internal/auth"
	"github.com/ceres919/go-webdav"
	"github.com/ceres919/go-webdav/caldav"
)

type userPrincipalBackend struct{}

func (u *userPrincipalBackend) CurrentUserPrincipal(ctx context.Context) (string, error) {
	if authCtx, ok := auth.FromContext(ctx); ok && authCtx != nil {
		return "/" + authCtx.UserName + "/", nil
	}
	return "/" + "admin" + "/", nil
}

type davHandler struct {
	upBackend     webdav.UserPrincipalBackend
	caldavBackend caldav.Backend
}

func (d *davHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userPrincipalPath, err := d.upBackend.CurrentUserPrincipal(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	}

	var homeSets []webdav.BackendSuppliedHomeSet
	if d.caldavBackend != nil {
		path, err := d.caldavBackend.CalendarHomeSetPath(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		} else {
			homeSets = append(homeSets, caldav.NewCalendarHomeSet(path))
		}
	}

	if userPrincipalPath != "" {
		opts := webdav.ServePrincipalOptions{
			CurrentUserPrincipalPath: userPrincipalPath,
			HomeSets:                 homeSets,
			Capabilities: []webdav.Capability{
				caldav.CapabilityCalendar,
			},
		}

		webdav.ServePrincipal(w, r, &opts)
		return
	}

	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}
