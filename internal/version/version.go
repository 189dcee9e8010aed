package version

// Version is overridden at link time:
//
//	go build -ldflags "-X motifscan/internal/version.Version=v1.2.3"
var Version = "dev"
