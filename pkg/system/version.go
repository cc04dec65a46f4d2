package system

// Version is stamped at build time via -ldflags "-X ...system.Version=...".
var Version = "dev"
