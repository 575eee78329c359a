package config

// Version is the bookinglog binary version.
// Set at build time via: -ldflags "-X github.com/bookinglog/bookinglog/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
