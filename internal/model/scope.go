package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the request-scoped identity a usecase acts on behalf of.
type Scope struct {
	Person string
}
