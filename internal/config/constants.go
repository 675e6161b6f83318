// internal/config/constants.go
package config

const (
	AppName    = "AprovApp"
	AppVersion = "0.3.0"
)

const (
	DefaultServerPort    = ":8080"
	DefaultLogLevel      = "info"
	DefaultUpcomingLimit = 10
	DefaultWriteRetries  = 3
)
