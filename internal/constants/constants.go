package constants

// Deployment stages.
const (
	ProdEnvironment  = "production"
	DevEnvironment   = "development"
	LocalEnvironment = "local"
	TestEnvironment  = "test"
)

// ServiceName identifies this service in structured log output.
const ServiceName = "lodestar-contract-api"
