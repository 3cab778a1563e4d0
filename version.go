package oasgen

// version is stamped at release time with
//
//	go build -ldflags "-X github.com/oasgen/oasgen.version=v1.2.3"
//
// and reads "dev" when built from source.
var version = "dev"

// Version reports the build version of this module.
func Version() string {
	return version
}

// UserAgent is the product token for outward-facing surfaces that want to
// name the build, for example generated client headers.
func UserAgent() string {
	return "oasgen/" + version
}
