package version

const (
	AppName = "StreamCast"
	Version = "0.1.0"
)
