package config

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	environment := os.Getenv(Environment)

	clientOrigin := os.Getenv(ClientOrigin)
	if clientOrigin == "" {
		return nil, fmt.Errorf(EnvironmentVariableNotDefined, ClientOrigin)
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	sqsConfig, err := ReadSqsConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   serverPort,
		Environment:  environment,
		ClientOrigin: clientOrigin,
		Mongodb:      mongodbConfig,
		Jwt:          jwtConfig,
		Sqs:          sqsConfig,
	}, nil
}

func (c *Config) Print() {
	redacted := *c
	redacted.Mongodb.Password = "***"
	redacted.Jwt = JwtConfig{}
	_, _ = pretty.Println(&redacted)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbUsername := os.Getenv(MongodbUsername)
	if mongodbUsername == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUsername)
	}

	mongodbPassword := os.Getenv(MongodbPassword)
	if mongodbPassword == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbPassword)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	mongodbUserCollection := os.Getenv(MongodbUserCollection)
	if mongodbUserCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUserCollection)
	}

	mongodbApplicationCollection := os.Getenv(MongodbApplicationCollection)
	if mongodbApplicationCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbApplicationCollection)
	}

	return MongodbConfig{
		Uri:      mongodbUri,
		Username: mongodbUsername,
		Password: mongodbPassword,
		Database: mongodbDatabase,
		Collections: map[string]string{
			MongodbUserCollection:        mongodbUserCollection,
			MongodbApplicationCollection: mongodbApplicationCollection,
		},
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	accessSecret := os.Getenv(JwtAccessSecret)
	if accessSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtAccessSecret)
	}

	refreshSecret := os.Getenv(JwtRefreshSecret)
	if refreshSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtRefreshSecret)
	}

	emailVerifySecret := os.Getenv(JwtEmailVerifySecret)
	if emailVerifySecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtEmailVerifySecret)
	}

	passwordResetSecret := os.Getenv(JwtPasswordResetSecret)
	if passwordResetSecret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtPasswordResetSecret)
	}

	return JwtConfig{
		AccessSecret:        []byte(accessSecret),
		RefreshSecret:       []byte(refreshSecret),
		EmailVerifySecret:   []byte(emailVerifySecret),
		PasswordResetSecret: []byte(passwordResetSecret),
	}, nil
}

func ReadSqsConfig() (SqsConfig, error) {
	emailQueueUrl := os.Getenv(SqsEmailQueueUrl)
	if emailQueueUrl == "" {
		return SqsConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, SqsEmailQueueUrl)
	}

	return SqsConfig{
		EmailQueueUrl: emailQueueUrl,
	}, nil
}
