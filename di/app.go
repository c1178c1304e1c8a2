package di

import (
	"stay/jobs"
	"stay/transport/http"
)

// App bundles the long-running pieces of the service.
type App struct {
	HTTP        *http.HTTP
	Maintenance *jobs.Maintenance
}
