package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mortgage-api/pkg/cerror"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=application
type Service interface {
	GetApplicationByUserId(ctx context.Context, userId string) (*ApplicationDocument, error)
	SaveApplication(ctx context.Context, userId string, payload *UpsertApplicationPayload) (*ApplicationDocument, error)
	SubmitApplication(ctx context.Context, userId string) (*ApplicationDocument, error)
	ListApplications(ctx context.Context) ([]*ApplicationDocument, error)
	GetApplicationById(ctx context.Context, applicationId string) (*ApplicationDocument, error)
	UpdateApproval(ctx context.Context, applicationId, approval string) error
}

type service struct {
	applicationRepository Repository
}

func NewService(applicationRepository Repository) Service {
	return &service{
		applicationRepository: applicationRepository,
	}
}

func (s *service) GetApplicationByUserId(ctx context.Context, userId string) (*ApplicationDocument, error) {
	document, err := s.applicationRepository.FindApplicationWithUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	if document == nil {
		return nil, cerror.ErrorApplicationNotFound
	}

	return document, nil
}

// SaveApplication keeps a single draft-or-later document per user. Saving
// never moves the status backwards: a submitted application stays submitted.
func (s *service) SaveApplication(
	ctx context.Context,
	userId string,
	payload *UpsertApplicationPayload,
) (*ApplicationDocument, error) {
	now := time.Now().UTC().Unix()

	document, err := s.applicationRepository.FindApplicationWithUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	if document == nil {
		document = &ApplicationDocument{
			Id:        uuid.New().String(),
			UserId:    userId,
			Status:    StatusDraft,
			Approval:  ApprovalPending,
			CreatedAt: now,
		}
	}

	document.Personal = payload.Personal
	document.Employment = payload.Employment
	document.Assets = payload.Assets
	document.RealEstate = payload.RealEstate
	document.LoanProperty = payload.LoanProperty
	document.Declarations = payload.Declarations
	document.UpdatedAt = now

	err = s.applicationRepository.UpsertApplication(ctx, document)
	if err != nil {
		return nil, err
	}

	return document, nil
}

func (s *service) SubmitApplication(ctx context.Context, userId string) (*ApplicationDocument, error) {
	document, err := s.applicationRepository.FindApplicationWithUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	if document == nil {
		return nil, cerror.ErrorApplicationNotFound
	}

	if document.Status != StatusSubmitted {
		err = s.applicationRepository.UpdateStatus(ctx, document.Id, StatusSubmitted)
		if err != nil {
			return nil, err
		}

		document.Status = StatusSubmitted
	}

	return document, nil
}

func (s *service) ListApplications(ctx context.Context) ([]*ApplicationDocument, error) {
	return s.applicationRepository.FindAllApplications(ctx)
}

func (s *service) GetApplicationById(ctx context.Context, applicationId string) (*ApplicationDocument, error) {
	document, err := s.applicationRepository.FindApplicationWithId(ctx, applicationId)
	if err != nil {
		return nil, err
	}

	if document == nil {
		return nil, cerror.ErrorApplicationNotFound
	}

	return document, nil
}

func (s *service) UpdateApproval(ctx context.Context, applicationId, approval string) error {
	approvalUpdatedAt := time.Now().UTC().Unix()

	return s.applicationRepository.UpdateApproval(ctx, applicationId, approval, approvalUpdatedAt)
}
