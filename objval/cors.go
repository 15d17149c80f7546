package objval

// CORSRule represents a single cross-origin resource sharing rule.
type CORSRule struct {
	// AllowedOrigins are the origins which may access the bucket cross-origin.
	AllowedOrigins []string

	// AllowedMethods are the HTTP methods which may be used e.g. "GET".
	AllowedMethods []string

	// AllowedHeaders are the headers which may be sent in a pre-flighted request.
	AllowedHeaders []string

	// ExposeHeaders are the response headers which browsers are allowed to access.
	ExposeHeaders []string

	// MaxAgeSeconds is how long browsers may cache the pre-flight response.
	MaxAgeSeconds *int
}
