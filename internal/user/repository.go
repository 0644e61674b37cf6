package user

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/config"
)

// Repository owns the user collection. Lookups report absence as a nil
// document, not an error; every write is a single-document operation and
// racing writers resolve last-writer-wins.
//
//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=user
type Repository interface {
	InsertUser(ctx context.Context, user *UserDocument) (string, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	UpdateVerificationToken(ctx context.Context, userId, verificationToken string) error
	MarkEmailVerified(ctx context.Context, userId string) error
	UpdateRefreshToken(ctx context.Context, userId, refreshToken string) error
	UpdateResetToken(ctx context.Context, userId, resetToken string) error
	UpdatePassword(ctx context.Context, userId, hashedPassword string) error
}

type repository struct {
	mongodbClient *mongo.Client
	mongodbConfig *config.MongodbConfig
}

func NewRepository(mongodbClient *mongo.Client, mongodbConfig *config.MongodbConfig) Repository {
	return &repository{
		mongodbClient: mongodbClient,
		mongodbConfig: mongodbConfig,
	}
}

func (r *repository) userCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbUserCollection])
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) (string, error) {
	collection := r.userCollection()

	var foundUser bson.D
	filter := bson.D{{Key: "email", Value: user.Email}}
	err := collection.FindOne(ctx, &filter).Decode(&foundUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while user existing check",
			zap.Error(err),
		)
	}

	if len(foundUser) > 0 {
		return "", cerror.NewError(
			fiber.StatusConflict,
			"user already exists",
		).SetSeverity(zapcore.WarnLevel)
	}

	result, err := collection.InsertOne(ctx, user)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	userId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for user id",
		)
	}

	return userId, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "email", Value: email}}
	err := r.userCollection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.userCollection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) UpdateVerificationToken(ctx context.Context, userId, verificationToken string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "verificationToken", Value: verificationToken},
	}}}

	return r.updateUserById(ctx, userId, update, "error occurred while update verification token")
}

func (r *repository) MarkEmailVerified(ctx context.Context, userId string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "emailVerified", Value: true},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "verificationToken", Value: ""},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while mark email verified")
}

func (r *repository) UpdateRefreshToken(ctx context.Context, userId, refreshToken string) error {
	var update bson.D
	if refreshToken == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{
			{Key: "refreshToken", Value: ""},
		}}}
	} else {
		update = bson.D{{Key: "$set", Value: bson.D{
			{Key: "refreshToken", Value: refreshToken},
		}}}
	}

	return r.updateUserById(ctx, userId, update, "error occurred while update refresh token")
}

func (r *repository) UpdateResetToken(ctx context.Context, userId, resetToken string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "resetToken", Value: resetToken},
	}}}

	return r.updateUserById(ctx, userId, update, "error occurred while update reset token")
}

func (r *repository) UpdatePassword(ctx context.Context, userId, hashedPassword string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password", Value: hashedPassword},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "resetToken", Value: ""},
			{Key: "refreshToken", Value: ""},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while update password")
}

func (r *repository) updateUserById(ctx context.Context, userId string, update bson.D, logMessage string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	result, err := r.userCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			logMessage,
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return cerror.ErrorUserNotFound
	}

	return nil
}
