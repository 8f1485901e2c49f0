package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	c "newsdesk/internal/core/domain/common"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	admincreateuser "newsdesk/internal/core/services/admin_create_user"
	adminchangeuser "newsdesk/internal/core/services/admin_change_user"
	admindeleteuser "newsdesk/internal/core/services/admin_delete_user"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	createUser *services.FakeService[admincreateuser.Input, admincreateuser.Result]
	changeUser *services.FakeService[adminchangeuser.Input, adminchangeuser.Result]
	deleteUser *services.FakeService[admindeleteuser.Input, admindeleteuser.Result]
	migrated   bool
	migrateErr error
}

func (suite *testSuite) SetupTest() {
	suite.out = &bytes.Buffer{}
	suite.errOut = &bytes.Buffer{}
	suite.createUser = services.NewFakeService[admincreateuser.Input, admincreateuser.Result]()
	suite.changeUser = services.NewFakeService[adminchangeuser.Input, adminchangeuser.Result]()
	suite.deleteUser = services.NewFakeService[admindeleteuser.Input, admindeleteuser.Result]()
	suite.migrated = false
	suite.migrateErr = nil
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) run(stdin string, args ...string) int {
	cli := New(
		strings.NewReader(stdin),
		suite.out,
		suite.errOut,
		suite.createUser,
		suite.changeUser,
		suite.deleteUser,
		func() (bool, error) { return suite.migrated, suite.migrateErr },
	)
	return cli.Run(context.Background(), args)
}

func (suite *testSuite) TestCreateUser() {
	assert := suite.Require()

	// Setup
	suite.createUser.Result = admincreateuser.Result{User: user.User{ID: 7, Username: "alice"}}

	// Exercise
	code := suite.run("alice\nsecret1\n Alice@Example.COM \nROLE_USER|ROLE_ADMIN\n", "create-user")

	// Verify
	assert.Equal(EXIT_OK, code)
	assert.Len(suite.createUser.Inputs, 1)
	assert.Equal(admincreateuser.Input{
		Username: "alice",
		Password: "secret1",
		Mail:     c.Email("alice@example.com"),
		Roles:    []user.Role{user.RoleUser, user.RoleAdmin},
	}, suite.createUser.Inputs[0])
	assert.Contains(suite.out.String(), "User alice created (id 7).")
	assert.Empty(suite.errOut.String())
}

func (suite *testSuite) TestCreateUserDefaultRolesAndRetry() {
	assert := suite.Require()

	// Exercise
	code := suite.run("bob\nshort\nlongenough\nnot-a-mail\nbob@example.com\n\n", "create-user")

	// Verify
	assert.Equal(EXIT_OK, code)
	assert.Len(suite.createUser.Inputs, 1)
	input := suite.createUser.Inputs[0]
	assert.Equal(user.RawPassword("longenough"), input.Password)
	assert.Equal(c.Email("bob@example.com"), input.Mail)
	assert.Equal(user.DefaultRoles(), input.Roles)
	assert.Equal(2, strings.Count(suite.errOut.String(), "Invalid value"))
}

func (suite *testSuite) TestCreateUserDuplicate() {
	assert := suite.Require()

	suite.createUser.Err = user.ErrDuplicateKey

	code := suite.run("alice\nsecret1\nalice@example.com\n\n", "create-user")

	assert.Equal(EXIT_FAILURE, code)
	assert.Contains(suite.errOut.String(), "already exists")
}

func (suite *testSuite) TestCreateUserAbortedInput() {
	assert := suite.Require()

	code := suite.run("alice\n", "create-user")

	assert.Equal(EXIT_FAILURE, code)
	assert.Empty(suite.createUser.Inputs)
	assert.Contains(suite.errOut.String(), "Aborted.")
}

func (suite *testSuite) TestChangeUser() {
	assert := suite.Require()

	// Exercise
	code := suite.run("\nnew@example.com\nROLE_ADMIN\n\n", "change-user", "alice")

	// Verify
	assert.Equal(EXIT_OK, code)
	assert.Len(suite.changeUser.Inputs, 1)
	input := suite.changeUser.Inputs[0]
	assert.Equal(user.Username("alice"), input.Username)
	assert.False(input.Password.IsPresent)
	assert.Equal(c.NewOptional(c.Email("new@example.com"), true), input.Mail)
	assert.Equal(c.NewOptional([]user.Role{user.RoleAdmin}, true), input.Roles)
	assert.False(input.ValidationCode.IsPresent)
	assert.Contains(suite.out.String(), "User alice changed.")
}

func (suite *testSuite) TestChangeUserNothingToChange() {
	assert := suite.Require()

	suite.changeUser.Err = user.ErrNoChange

	code := suite.run("\n\n\n\n", "change-user", "alice")

	assert.Equal(EXIT_OK, code)
	assert.Contains(suite.out.String(), "Nothing to change for user alice.")
}

func (suite *testSuite) TestChangeUnknownUser() {
	assert := suite.Require()

	suite.changeUser.Err = user.ErrUserDoesNotExist

	code := suite.run("secret1\n\n\n\n", "change-user", "ghost")

	assert.Equal(EXIT_FAILURE, code)
	assert.Contains(suite.errOut.String(), "User ghost does not exist.")
}

func (suite *testSuite) TestDeleteUser() {
	for _, testcase := range []struct {
		id             string
		answer         string
		serviceErr     error
		expectedCode   int
		expectedRuns   int
		expectPrompt   bool
		expectedOutput string
		expectedErrOut string
	}{
		{
			id:             "confirmed",
			answer:         "y\n",
			expectedCode:   EXIT_OK,
			expectedRuns:   2,
			expectPrompt:   true,
			expectedOutput: "User alice deleted.",
		},
		{
			id:             "default is no",
			answer:         "\n",
			serviceErr:     user.ErrCancelled,
			expectedCode:   EXIT_OK,
			expectedRuns:   1,
			expectPrompt:   true,
			expectedOutput: "Deletion cancelled.",
		},
		{
			id:             "unknown user is reported before asking",
			answer:         "YES\n",
			serviceErr:     user.ErrUserDoesNotExist,
			expectedCode:   EXIT_FAILURE,
			expectedRuns:   1,
			expectedErrOut: "User alice does not exist.",
		},
	} {
		suite.Run(testcase.id, func() {
			assert := suite.Require()
			suite.SetupTest()
			suite.deleteUser.Err = testcase.serviceErr

			code := suite.run(testcase.answer, "delete-user", "alice")

			assert.Equal(testcase.expectedCode, code)
			assert.Len(suite.deleteUser.Inputs, testcase.expectedRuns)
			assert.False(suite.deleteUser.Inputs[0].Confirmed)
			if testcase.expectedRuns == 2 {
				assert.True(suite.deleteUser.Inputs[1].Confirmed)
			}
			assert.Equal(testcase.expectPrompt, strings.Contains(suite.out.String(), "Delete user alice?"))
			assert.Contains(suite.out.String(), testcase.expectedOutput)
			assert.Contains(suite.errOut.String(), testcase.expectedErrOut)
		})
	}
}

func (suite *testSuite) TestMigrate() {
	assert := suite.Require()

	suite.migrated = true
	assert.Equal(EXIT_OK, suite.run("", "migrate"))
	assert.Contains(suite.out.String(), "Migrations applied.")

	suite.migrateErr = errors.New("connection refused")
	assert.Equal(EXIT_FAILURE, suite.run("", "migrate"))
	assert.Contains(suite.errOut.String(), "connection refused")
}

func (suite *testSuite) TestUsage() {
	assert := suite.Require()

	assert.Equal(EXIT_FAILURE, suite.run(""))
	assert.Equal(EXIT_FAILURE, suite.run("", "delete-user"))
	assert.Equal(EXIT_FAILURE, suite.run("", "drop-database"))
	assert.Contains(suite.errOut.String(), `Unknown command "drop-database".`)
	assert.Empty(suite.createUser.Inputs)
	assert.Empty(suite.deleteUser.Inputs)
}
