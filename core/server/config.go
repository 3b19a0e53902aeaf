package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Features lists the features to enable; empty enables all registered ones.
	Features []string `mapstructure:"features" default:""`
}

// FeatureEnabled reports whether the named feature should be loaded.
func (c Config) FeatureEnabled(name string) bool {
	if len(c.Features) == 0 {
		return true
	}
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}
