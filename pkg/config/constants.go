package config

// EnvPrefix namespaces every environment variable read by envconfig.
const EnvPrefix = "CAKECAFE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "CAKECAFE_DB_DSN"
	EnvDBHost = "CAKECAFE_DB_HOST"
	EnvDBUser = "CAKECAFE_DB_USER"
	EnvDBName = "CAKECAFE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
