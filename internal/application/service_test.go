//go:build unit

package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-api/pkg/cerror"
)

const (
	TestUserId        = "abcd-abcd-abcd-abcd-abcd"
	TestApplicationId = "efgh-efgh-efgh-efgh-efgh"
)

func TestNewService(t *testing.T) {
	applicationService := NewService(nil)

	assert.Implements(t, (*Service)(nil), applicationService)
}

func TestService_GetApplicationByUserId(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(&ApplicationDocument{
				Id:     TestApplicationId,
				UserId: TestUserId,
				Status: StatusDraft,
			}, nil)

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.GetApplicationByUserId(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, TestApplicationId, document.Id)
	})

	t.Run("when user has no application should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(nil, nil)

		applicationService := NewService(mockApplicationRepository)
		_, err := applicationService.GetApplicationByUserId(ctx, TestUserId)

		assert.ErrorIs(t, err, cerror.ErrorApplicationNotFound)
	})
}

func TestService_SaveApplication(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("first save should create a draft", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(nil, nil)

		mockApplicationRepository.
			EXPECT().
			UpsertApplication(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, document *ApplicationDocument) error {
				assert.NotEmpty(t, document.Id)
				assert.Equal(t, TestUserId, document.UserId)
				assert.Equal(t, StatusDraft, document.Status)
				assert.Equal(t, ApprovalPending, document.Approval)
				return nil
			})

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.SaveApplication(ctx, TestUserId, &UpsertApplicationPayload{
			Personal: map[string]interface{}{"firstName": "Jane"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jane", document.Personal["firstName"])
	})

	t.Run("saving again should keep the id and not reset the status", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(&ApplicationDocument{
				Id:       TestApplicationId,
				UserId:   TestUserId,
				Status:   StatusSubmitted,
				Approval: ApprovalPending,
			}, nil)

		mockApplicationRepository.
			EXPECT().
			UpsertApplication(ctx, gomock.Any()).
			Return(nil)

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.SaveApplication(ctx, TestUserId, &UpsertApplicationPayload{
			Employment: map[string]interface{}{"employer": "Acme"},
		})

		assert.NoError(t, err)
		assert.Equal(t, TestApplicationId, document.Id)
		assert.Equal(t, StatusSubmitted, document.Status)
	})

	t.Run("when error occurred while upsert should return error", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(nil, nil)

		mockApplicationRepository.
			EXPECT().
			UpsertApplication(ctx, gomock.Any()).
			Return(errors.New("something went wrong"))

		applicationService := NewService(mockApplicationRepository)
		_, err := applicationService.SaveApplication(ctx, TestUserId, &UpsertApplicationPayload{})

		assert.Error(t, err)
	})
}

func TestService_SubmitApplication(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(&ApplicationDocument{
				Id:     TestApplicationId,
				UserId: TestUserId,
				Status: StatusDraft,
			}, nil)

		mockApplicationRepository.
			EXPECT().
			UpdateStatus(ctx, TestApplicationId, StatusSubmitted).
			Return(nil)

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.SubmitApplication(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, StatusSubmitted, document.Status)
	})

	t.Run("submitting twice should not write again", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(&ApplicationDocument{
				Id:     TestApplicationId,
				UserId: TestUserId,
				Status: StatusSubmitted,
			}, nil)

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.SubmitApplication(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, StatusSubmitted, document.Status)
	})

	t.Run("when user has no application should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithUserId(ctx, TestUserId).
			Return(nil, nil)

		applicationService := NewService(mockApplicationRepository)
		_, err := applicationService.SubmitApplication(ctx, TestUserId)

		assert.ErrorIs(t, err, cerror.ErrorApplicationNotFound)
	})
}

func TestService_GetApplicationById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithId(ctx, TestApplicationId).
			Return(&ApplicationDocument{
				Id:     TestApplicationId,
				UserId: TestUserId,
			}, nil)

		applicationService := NewService(mockApplicationRepository)
		document, err := applicationService.GetApplicationById(ctx, TestApplicationId)

		assert.NoError(t, err)
		assert.Equal(t, TestUserId, document.UserId)
	})

	t.Run("when application does not exist should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindApplicationWithId(ctx, TestApplicationId).
			Return(nil, nil)

		applicationService := NewService(mockApplicationRepository)
		_, err := applicationService.GetApplicationById(ctx, TestApplicationId)

		assert.ErrorIs(t, err, cerror.ErrorApplicationNotFound)
	})
}

func TestService_UpdateApproval(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			UpdateApproval(ctx, TestApplicationId, ApprovalApproved, gomock.Any()).
			Return(nil)

		applicationService := NewService(mockApplicationRepository)
		err := applicationService.UpdateApproval(ctx, TestApplicationId, ApprovalApproved)

		assert.NoError(t, err)
	})

	t.Run("when application does not exist should return not found", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			UpdateApproval(ctx, TestApplicationId, ApprovalDenied, gomock.Any()).
			Return(cerror.ErrorApplicationNotFound)

		applicationService := NewService(mockApplicationRepository)
		err := applicationService.UpdateApproval(ctx, TestApplicationId, ApprovalDenied)

		assert.ErrorIs(t, err, cerror.ErrorApplicationNotFound)
	})
}

func TestService_ListApplications(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		mockApplicationRepository := NewMockRepository(mockController)

		mockApplicationRepository.
			EXPECT().
			FindAllApplications(ctx).
			Return([]*ApplicationDocument{
				{Id: TestApplicationId, UserId: TestUserId},
			}, nil)

		applicationService := NewService(mockApplicationRepository)
		documents, err := applicationService.ListApplications(ctx)

		require.NoError(t, err)
		assert.Len(t, documents, 1)
	})
}
