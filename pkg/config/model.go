package config

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	ServerPort  = "SERVER_PORT"
	IsAtRemote  = "IS_AT_REMOTE"
	Environment = "ENVIRONMENT"

	ClientOrigin = "CLIENT_ORIGIN"

	MongodbUri                   = "MONGODB_URI"
	MongodbUsername              = "MONGODB_USERNAME"
	MongodbPassword              = "MONGODB_PASSWORD"
	MongodbDatabase              = "MONGODB_DATABASE"
	MongodbUserCollection        = "MONGODB_USER_COLLECTION"
	MongodbApplicationCollection = "MONGODB_APPLICATION_COLLECTION"

	JwtAccessSecret        = "JWT_ACCESS_SECRET"
	JwtRefreshSecret       = "JWT_REFRESH_SECRET"
	JwtEmailVerifySecret   = "JWT_EMAIL_VERIFY_SECRET"
	JwtPasswordResetSecret = "JWT_PASSWORD_RESET_SECRET"

	SqsEmailQueueUrl = "SQS_EMAIL_QUEUE_URL"

	EnvironmentProduction = "production"
)

type Config struct {
	ServerPort   string
	Environment  string
	ClientOrigin string
	Mongodb      MongodbConfig
	Jwt          JwtConfig
	Sqs          SqsConfig
}

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	AccessSecret        []byte
	RefreshSecret       []byte
	EmailVerifySecret   []byte
	PasswordResetSecret []byte
}

type SqsConfig struct {
	EmailQueueUrl string
}
