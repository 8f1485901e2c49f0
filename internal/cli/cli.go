package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	c "newsdesk/internal/core/domain/common"
	e "newsdesk/internal/core/domain/errors"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/core/services"
	admincreateuser "newsdesk/internal/core/services/admin_create_user"
	adminchangeuser "newsdesk/internal/core/services/admin_change_user"
	admindeleteuser "newsdesk/internal/core/services/admin_delete_user"

	"golang.org/x/term"
)

const (
	EXIT_OK      = 0
	EXIT_FAILURE = 1

	USAGE = `Usage: newsdesk-admin <command> [arguments]

Commands:
  create-user             create a user, prompting for its fields
  change-user <username>  change the password, mail, roles or validation code of a user
  delete-user <username>  delete a user after confirmation
  migrate                 apply database migrations
`
)

// Migrator applies pending migrations and reports whether any were applied.
type Migrator func() (applied bool, err error)

type CLI struct {
	rawIn  io.Reader
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	createUser services.Service[admincreateuser.Input, admincreateuser.Result]
	changeUser services.Service[adminchangeuser.Input, adminchangeuser.Result]
	deleteUser services.Service[admindeleteuser.Input, admindeleteuser.Result]
	migrate    Migrator
}

func New(
	in io.Reader,
	out io.Writer,
	errOut io.Writer,
	createUser services.Service[admincreateuser.Input, admincreateuser.Result],
	changeUser services.Service[adminchangeuser.Input, adminchangeuser.Result],
	deleteUser services.Service[admindeleteuser.Input, admindeleteuser.Result],
	migrate Migrator,
) *CLI {
	if in == nil {
		panic(e.NewNilArgumentError("in"))
	}
	if out == nil {
		panic(e.NewNilArgumentError("out"))
	}
	if errOut == nil {
		panic(e.NewNilArgumentError("errOut"))
	}
	if createUser == nil {
		panic(e.NewNilArgumentError("createUser"))
	}
	if changeUser == nil {
		panic(e.NewNilArgumentError("changeUser"))
	}
	if deleteUser == nil {
		panic(e.NewNilArgumentError("deleteUser"))
	}
	if migrate == nil {
		panic(e.NewNilArgumentError("migrate"))
	}
	return &CLI{
		rawIn:      in,
		in:         bufio.NewReader(in),
		out:        out,
		errOut:     errOut,
		createUser: createUser,
		changeUser: changeUser,
		deleteUser: deleteUser,
		migrate:    migrate,
	}
}

// Run executes the command named by args[0] and returns the exit status.
func (cli *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(cli.errOut, USAGE)
		return EXIT_FAILURE
	}

	command, rest := args[0], args[1:]
	switch command {
	case "create-user":
		return cli.runCreateUser(ctx)
	case "change-user":
		if len(rest) != 1 {
			fmt.Fprint(cli.errOut, USAGE)
			return EXIT_FAILURE
		}
		return cli.runChangeUser(ctx, user.Username(rest[0]))
	case "delete-user":
		if len(rest) != 1 {
			fmt.Fprint(cli.errOut, USAGE)
			return EXIT_FAILURE
		}
		return cli.runDeleteUser(ctx, user.Username(rest[0]))
	case "migrate":
		return cli.runMigrate()
	case "help", "-h", "--help":
		fmt.Fprint(cli.out, USAGE)
		return EXIT_OK
	default:
		fmt.Fprintf(cli.errOut, "Unknown command %q.\n\n%s", command, USAGE)
		return EXIT_FAILURE
	}
}

func (cli *CLI) runCreateUser(ctx context.Context) int {
	username, err := cli.askValid("Username: ", false, user.ValidateUsername)
	if err != nil {
		return cli.fail(err)
	}
	password, err := cli.askValid("Password: ", true, user.ValidatePassword)
	if err != nil {
		return cli.fail(err)
	}
	mail, err := cli.askValid("Mail: ", false, func(value string) error {
		return user.ValidateMail(string(c.NewEmail(value)))
	})
	if err != nil {
		return cli.fail(err)
	}
	rawRoles, err := cli.ask(fmt.Sprintf("Roles, pipe separated [%s]: ", user.RoleUser), false)
	if err != nil {
		return cli.fail(err)
	}
	roles := user.ParseRoles(rawRoles)
	if len(roles) == 0 {
		roles = user.DefaultRoles()
	}

	result, err := cli.createUser.Run(ctx, admincreateuser.Input{
		Username: user.Username(username),
		Password: user.RawPassword(password),
		Mail:     c.NewEmail(mail),
		Roles:    roles,
	})
	if errors.Is(err, user.ErrDuplicateKey) {
		fmt.Fprintf(cli.errOut, "A user with this username or mail already exists.\n")
		return EXIT_FAILURE
	}
	if err != nil {
		return cli.fail(err)
	}

	fmt.Fprintf(cli.out, "User %s created (id %d).\n", result.User.Username, result.User.ID)
	return EXIT_OK
}

func (cli *CLI) runChangeUser(ctx context.Context, username user.Username) int {
	password, err := cli.askValid("New password (empty to keep): ", true, optional(user.ValidatePassword))
	if err != nil {
		return cli.fail(err)
	}
	mail, err := cli.askValid("New mail (empty to keep): ", false, optional(func(value string) error {
		return user.ValidateMail(string(c.NewEmail(value)))
	}))
	if err != nil {
		return cli.fail(err)
	}
	rawRoles, err := cli.ask("New roles, pipe separated (empty to keep): ", false)
	if err != nil {
		return cli.fail(err)
	}
	code, err := cli.ask("New validation code (empty to keep): ", false)
	if err != nil {
		return cli.fail(err)
	}

	roles := user.ParseRoles(rawRoles)
	input := adminchangeuser.Input{
		Username:       username,
		Password:       c.NewOptional(user.RawPassword(password), password != ""),
		Mail:           c.NewOptional(c.NewEmail(mail), mail != ""),
		Roles:          c.NewOptional(roles, len(roles) > 0),
		ValidationCode: c.NewOptional(user.ValidationCode(code), code != ""),
	}

	_, err = cli.changeUser.Run(ctx, input)
	switch {
	case err == nil:
		fmt.Fprintf(cli.out, "User %s changed.\n", username)
		return EXIT_OK
	case errors.Is(err, user.ErrNoChange):
		fmt.Fprintf(cli.out, "Nothing to change for user %s.\n", username)
		return EXIT_OK
	case errors.Is(err, user.ErrUserDoesNotExist):
		fmt.Fprintf(cli.errOut, "User %s does not exist.\n", username)
		return EXIT_FAILURE
	case errors.Is(err, user.ErrDuplicateKey):
		fmt.Fprintf(cli.errOut, "Another user already has this mail.\n")
		return EXIT_FAILURE
	default:
		return cli.fail(err)
	}
}

func (cli *CLI) runDeleteUser(ctx context.Context, username user.Username) int {
	// Unconfirmed run: reports an unknown user before asking anything.
	_, err := cli.deleteUser.Run(ctx, admindeleteuser.Input{Username: username})
	switch {
	case err == nil, errors.Is(err, user.ErrCancelled):
	case errors.Is(err, user.ErrUserDoesNotExist):
		fmt.Fprintf(cli.errOut, "User %s does not exist.\n", username)
		return EXIT_FAILURE
	default:
		return cli.fail(err)
	}

	answer, err := cli.ask(fmt.Sprintf("Delete user %s? [y/N]: ", username), false)
	if err != nil {
		return cli.fail(err)
	}
	answer = strings.ToLower(answer)
	if answer != "y" && answer != "yes" {
		fmt.Fprintf(cli.out, "Deletion cancelled.\n")
		return EXIT_OK
	}

	_, err = cli.deleteUser.Run(ctx, admindeleteuser.Input{
		Username:  username,
		Confirmed: true,
	})
	switch {
	case err == nil:
		fmt.Fprintf(cli.out, "User %s deleted.\n", username)
		return EXIT_OK
	case errors.Is(err, user.ErrUserDoesNotExist):
		fmt.Fprintf(cli.errOut, "User %s does not exist.\n", username)
		return EXIT_FAILURE
	default:
		return cli.fail(err)
	}
}

func (cli *CLI) runMigrate() int {
	applied, err := cli.migrate()
	if err != nil {
		return cli.fail(err)
	}
	if applied {
		fmt.Fprintln(cli.out, "Migrations applied.")
	} else {
		fmt.Fprintln(cli.out, "No new migrations.")
	}
	return EXIT_OK
}

func (cli *CLI) fail(err error) int {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(cli.errOut, "\nAborted.")
		return EXIT_FAILURE
	}
	fmt.Fprintf(cli.errOut, "Error: %s\n", err)
	return EXIT_FAILURE
}

// askValid repeats the question until the answer passes validate.
func (cli *CLI) askValid(question string, hidden bool, validate func(string) error) (string, error) {
	for {
		answer, err := cli.ask(question, hidden)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			fmt.Fprintf(cli.errOut, "Invalid value: %s.\n", err)
			continue
		}
		return answer, nil
	}
}

func (cli *CLI) ask(question string, hidden bool) (string, error) {
	fmt.Fprint(cli.out, question)
	if hidden {
		if f, ok := cli.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			secret, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(cli.out)
			return string(secret), err
		}
	}

	line, err := cli.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func optional(validate func(string) error) func(string) error {
	return func(value string) error {
		if value == "" {
			return nil
		}
		return validate(value)
	}
}
