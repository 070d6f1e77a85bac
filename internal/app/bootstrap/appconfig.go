// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to this service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Image upload configuration
	UploadDir string // Local directory uploaded images are written to
	UploadURL string // URL prefix uploaded images are served under

	// Base URL prepended to upload URLs in responses
	BaseURL string // e.g., "https://zogakzip.example.com" or "http://localhost:3000"
}
