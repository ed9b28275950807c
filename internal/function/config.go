package function

type Config struct {
	// RoutePrefix is the path prefix the canned routes are mounted under.
	RoutePrefix string `conf:"route_prefix"`

	// ServiceName is the name reported by the health route.
	ServiceName string `conf:"service_name"`
}
