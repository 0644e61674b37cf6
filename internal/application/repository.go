package application

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/config"
)

// Repository owns the application collection, one document per user.
//
//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=application
type Repository interface {
	UpsertApplication(ctx context.Context, document *ApplicationDocument) error
	FindApplicationWithUserId(ctx context.Context, userId string) (*ApplicationDocument, error)
	FindApplicationWithId(ctx context.Context, applicationId string) (*ApplicationDocument, error)
	FindAllApplications(ctx context.Context) ([]*ApplicationDocument, error)
	UpdateStatus(ctx context.Context, applicationId, status string) error
	UpdateApproval(ctx context.Context, applicationId, approval string, approvalUpdatedAt int64) error
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

func (r *repository) applicationCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbApplicationCollection])
}

func (r *repository) UpsertApplication(ctx context.Context, document *ApplicationDocument) error {
	filter := bson.D{{Key: "userId", Value: document.UserId}}
	replaceOptions := options.Replace().SetUpsert(true)

	_, err := r.applicationCollection().ReplaceOne(ctx, filter, document, replaceOptions)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while upsert application",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) FindApplicationWithUserId(ctx context.Context, userId string) (*ApplicationDocument, error) {
	var document ApplicationDocument

	filter := bson.D{{Key: "userId", Value: userId}}
	err := r.applicationCollection().FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find application with user id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindApplicationWithId(ctx context.Context, applicationId string) (*ApplicationDocument, error) {
	var document ApplicationDocument

	filter := bson.D{{Key: "_id", Value: applicationId}}
	err := r.applicationCollection().FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find application with id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindAllApplications(ctx context.Context) ([]*ApplicationDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.applicationCollection().Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find all applications",
			zap.Error(err),
		)
	}

	documents := make([]*ApplicationDocument, 0)
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode applications",
			zap.Error(err),
		)
	}

	return documents, nil
}

func (r *repository) UpdateStatus(ctx context.Context, applicationId, status string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
	}}}

	return r.updateApplicationById(ctx, applicationId, update, "error occurred while update status")
}

func (r *repository) UpdateApproval(ctx context.Context, applicationId, approval string, approvalUpdatedAt int64) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "approval", Value: approval},
		{Key: "approvalUpdatedAt", Value: approvalUpdatedAt},
	}}}

	return r.updateApplicationById(ctx, applicationId, update, "error occurred while update approval")
}

func (r *repository) updateApplicationById(ctx context.Context, applicationId string, update bson.D, logMessage string) error {
	filter := bson.D{{Key: "_id", Value: applicationId}}
	result, err := r.applicationCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			logMessage,
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return cerror.ErrorApplicationNotFound
	}

	return nil
}
