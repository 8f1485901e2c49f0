package email

import (
	"context"
	"errors"
	"testing"

	"newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/suite"
)

type fakeSES struct {
	Inputs      []*ses.SendEmailInput
	ReturnError bool
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.ReturnError {
		return nil, errors.New("ses is down")
	}
	f.Inputs = append(f.Inputs, params)
	return &ses.SendEmailOutput{MessageId: aws.String("test-id")}, nil
}

type testSuite struct {
	suite.Suite
	Client *fakeSES
	Sender *SESSender
}

func (suite *testSuite) SetupTest() {
	suite.Client = &fakeSES{}
	suite.Sender = newSESSender(suite.Client, "noreply@newsdesk.test")
}

func TestSESSender(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestMessageIsMapped() {
	assert := suite.Require()

	err := suite.Sender.Send(context.Background(), notification.Message{
		To:       "bob@example.com",
		Subject:  "Password reset",
		HTMLBody: "<p>code</p>",
	})

	assert.NoError(err)
	assert.Len(suite.Client.Inputs, 1)
	input := suite.Client.Inputs[0]
	assert.Equal("noreply@newsdesk.test", aws.ToString(input.Source))
	assert.Equal([]string{"bob@example.com"}, input.Destination.ToAddresses)
	assert.Equal("Password reset", aws.ToString(input.Message.Subject.Data))
	assert.Equal("<p>code</p>", aws.ToString(input.Message.Body.Html.Data))
	assert.Equal(charset, aws.ToString(input.Message.Body.Html.Charset))
}

func (suite *testSuite) TestTransportError() {
	assert := suite.Require()
	suite.Client.ReturnError = true

	err := suite.Sender.Send(context.Background(), notification.Message{To: "bob@example.com"})

	assert.Error(err)
}

func (suite *testSuite) TestMissingRecipient() {
	assert := suite.Require()

	err := suite.Sender.Send(context.Background(), notification.Message{Subject: "Hello"})

	assert.Error(err)
	assert.Empty(suite.Client.Inputs)
}

func (suite *testSuite) TestLoggingSender() {
	assert := suite.Require()
	log := logging.NewFakeLogger()

	err := NewLoggingSender(log).Send(context.Background(), notification.Message{To: "bob@example.com"})

	assert.NoError(err)
	assert.Equal(1, log.Count(logging.INFO))
}
