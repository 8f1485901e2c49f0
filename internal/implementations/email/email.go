package email

import (
	"context"
	"fmt"

	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESSender struct {
	ses sesClient
	// This address must be verified with Amazon SES.
	sender string
}

func NewSESSender(awsConfig aws.Config, sender string) *SESSender {
	return newSESSender(ses.NewFromConfig(awsConfig), sender)
}

func newSESSender(client sesClient, sender string) *SESSender {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if sender == "" {
		panic(e.NewInvalidStateError("mail sender address is not defined"))
	}
	return &SESSender{ses: client, sender: sender}
}

func (s *SESSender) Send(ctx context.Context, message notification.Message) error {
	if message.To == "" {
		return fmt.Errorf("message recipient is not defined")
	}

	_, err := s.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{string(message.To)},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String(charset),
				Data:    aws.String(message.Subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String(charset),
					Data:    aws.String(message.HTMLBody),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("could not send e-mail via SES: %w", err)
	}
	return nil
}
