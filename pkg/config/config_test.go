//go:build unit

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv() {
	os.Setenv(ClientOrigin, "http://localhost:5173")
	os.Setenv(MongodbUri, "database-uri")
	os.Setenv(MongodbUsername, "database-username")
	os.Setenv(MongodbPassword, "database-password")
	os.Setenv(MongodbDatabase, "database-database")
	os.Setenv(MongodbUserCollection, "users")
	os.Setenv(MongodbApplicationCollection, "applications")
	os.Setenv(JwtAccessSecret, "access-secret")
	os.Setenv(JwtRefreshSecret, "refresh-secret")
	os.Setenv(JwtEmailVerifySecret, "email-verify-secret")
	os.Setenv(JwtPasswordResetSecret, "password-reset-secret")
	os.Setenv(SqsEmailQueueUrl, "https://sqs.eu-central-1.amazonaws.com/123456789/email-queue")
}

func TestReadConfig(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		setRequiredEnv()
		os.Setenv(ServerPort, "8080")
		defer os.Clearenv()

		config, err := ReadConfig()

		assert.NoError(t, err)
		assert.NotEmpty(t, config)
	})

	t.Run("when server port is empty should return config with default port", func(t *testing.T) {
		setRequiredEnv()
		defer os.Clearenv()

		config, err := ReadConfig()

		assert.NoError(t, err)
		assert.Equal(t, "8080", config.ServerPort)
	})

	t.Run("when client origin is empty should return error", func(t *testing.T) {
		setRequiredEnv()
		os.Unsetenv(ClientOrigin)
		defer os.Clearenv()

		config, err := ReadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})
}

func TestReadMongoDbConfig(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		setRequiredEnv()
		defer os.Clearenv()

		mongoConfig, err := ReadMongoDbConfig()

		assert.NoError(t, err)
		assert.NotEmpty(t, mongoConfig)
		assert.Equal(t, "users", mongoConfig.Collections[MongodbUserCollection])
		assert.Equal(t, "applications", mongoConfig.Collections[MongodbApplicationCollection])
	})

	t.Run("when mongodb uri is empty should return error", func(t *testing.T) {
		setRequiredEnv()
		os.Unsetenv(MongodbUri)
		defer os.Clearenv()

		_, err := ReadMongoDbConfig()

		assert.Error(t, err)
	})

	t.Run("when application collection is empty should return error", func(t *testing.T) {
		setRequiredEnv()
		os.Unsetenv(MongodbApplicationCollection)
		defer os.Clearenv()

		_, err := ReadMongoDbConfig()

		assert.Error(t, err)
	})
}

func TestReadJwtConfig(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		setRequiredEnv()
		defer os.Clearenv()

		jwtConfig, err := ReadJwtConfig()

		assert.NoError(t, err)
		assert.Equal(t, []byte("access-secret"), jwtConfig.AccessSecret)
		assert.Equal(t, []byte("refresh-secret"), jwtConfig.RefreshSecret)
	})

	t.Run("when one of the token secrets is empty should return error", func(t *testing.T) {
		setRequiredEnv()
		os.Unsetenv(JwtPasswordResetSecret)
		defer os.Clearenv()

		_, err := ReadJwtConfig()

		assert.Error(t, err)
	})
}

func TestReadSqsConfig(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		setRequiredEnv()
		defer os.Clearenv()

		sqsConfig, err := ReadSqsConfig()

		assert.NoError(t, err)
		assert.NotEmpty(t, sqsConfig.EmailQueueUrl)
	})

	t.Run("when email queue url is empty should return error", func(t *testing.T) {
		defer os.Clearenv()

		_, err := ReadSqsConfig()

		assert.Error(t, err)
	})
}
