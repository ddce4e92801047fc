package constants

// Deployment environments set in env.env.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// IsDevelopment reports whether env is a developer environment, where push
// requests come from the unsigned local publisher.
func IsDevelopment(env string) bool {
	return env == "" || env == EnvLocal || env == EnvDevelop
}
