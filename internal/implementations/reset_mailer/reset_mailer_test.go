package resetmailer

import (
	"context"
	"testing"

	"newsdesk/internal/core/domain/notification"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/i18n"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

type testSuite struct {
	suite.Suite
	Sender *notification.FakeSender
	Mailer *Mailer
	User   user.User
}

func (suite *testSuite) SetupTest() {
	translator, err := i18n.New("en")
	suite.Require().NoError(err)
	suite.Sender = notification.NewFakeSender()
	suite.Mailer = New(suite.Sender, translator)
	suite.User = user.User{ID: 1, Username: "bob", Mail: "bob@example.com"}
}

func TestResetMailer(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestValidationCode() {
	assert := suite.Require()

	err := suite.Mailer.SendValidationCode(context.Background(), suite.User, "0123456789abcdef")

	assert.NoError(err)
	msg := suite.Sender.LastSent()
	assert.Equal(suite.User.Mail, msg.To)
	assert.Equal("Password reset", msg.Subject)
	assert.Contains(msg.HTMLBody, "<strong>0123456789abcdef</strong>")
	assert.Contains(msg.HTMLBody, "Hello bob")
}

func (suite *testSuite) TestNewPasswordInRequestLanguage() {
	assert := suite.Require()
	ctx := i18n.WithLanguage(context.Background(), language.French)

	err := suite.Mailer.SendNewPassword(ctx, suite.User, "fedcba9876543210")

	assert.NoError(err)
	msg := suite.Sender.LastSent()
	assert.Equal("Votre nouveau mot de passe", msg.Subject)
	assert.Contains(msg.HTMLBody, "fedcba9876543210")
	assert.Contains(msg.HTMLBody, `lang="fr"`)
}

func (suite *testSuite) TestUsernameIsEscaped() {
	assert := suite.Require()
	suite.User.Username = "<b>bob</b>"

	err := suite.Mailer.SendValidationCode(context.Background(), suite.User, "0123456789abcdef")

	assert.NoError(err)
	assert.NotContains(suite.Sender.LastSent().HTMLBody, "<b>bob</b>")
}

func (suite *testSuite) TestSenderError() {
	assert := suite.Require()
	suite.Sender.ReturnError = true

	err := suite.Mailer.SendValidationCode(context.Background(), suite.User, "0123456789abcdef")

	assert.Error(err)
}
