package config

// Version is the build version, overridden with -ldflags "-X ...config.Version=...".
var Version = "dev"
