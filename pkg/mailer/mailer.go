package mailer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/config"
)

const (
	MailKindEmailVerification = "email-verification"
	MailKindPasswordReset     = "password-reset"
)

// Mailer hands mail requests to the external mail service. Delivery itself
// is somebody else's problem; this side only enqueues.
//
//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}

type MailMessageBody struct {
	Email string `json:"email"`
	Token string `json:"token"`
	Kind  string `json:"kind"`
}

type sqsMailer struct {
	sqsClient *sqs.Client
	sqsConfig *config.SqsConfig
}

func NewSqsMailer(sqsClient *sqs.Client, sqsConfig *config.SqsConfig) Mailer {
	return &sqsMailer{
		sqsClient: sqsClient,
		sqsConfig: sqsConfig,
	}
}

func (m *sqsMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	return m.sendMailMessage(ctx, &MailMessageBody{
		Email: email,
		Token: token,
		Kind:  MailKindEmailVerification,
	})
}

func (m *sqsMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.sendMailMessage(ctx, &MailMessageBody{
		Email: email,
		Token: token,
		Kind:  MailKindPasswordReset,
	})
}

func (m *sqsMailer) sendMailMessage(ctx context.Context, messageBody *MailMessageBody) error {
	messageBodyBytes, err := json.Marshal(messageBody)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while marshal mail message",
			zap.Error(err),
		)
	}

	_, err = m.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(m.sqsConfig.EmailQueueUrl),
		MessageBody: aws.String(string(messageBodyBytes)),
		MessageAttributes: map[string]sqsTypes.MessageAttributeValue{
			"From": {
				DataType:    aws.String("String"),
				StringValue: aws.String("MortgageAPI"),
			},
			"To": {
				DataType:    aws.String("String"),
				StringValue: aws.String("EmailAPI"),
			},
		},
	})
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while send message to email queue",
			zap.Error(err),
		)
	}

	return nil
}
