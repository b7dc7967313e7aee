package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/atotto/clipboard"
)

const (
	defaultCodeCount = 4
	defaultMaxCodes  = 8
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"signup":            {"--account ID --name NAME [--email ADDR] < passphrase", (*App).signup},
	"login":             {"--account ID [--label LABEL] < passphrase", (*App).login},
	"add-questions":     {"--account ID --token T --key KEY < question=answer lines", (*App).addQuestions},
	"add-codes":         {"--account ID --token T --key KEY [--n N] [--copy]", (*App).addCodes},
	"recover-questions": {"--account ID < question=answer lines", (*App).recoverQuestions},
	"recover-code":      {"--account ID [--max N] < code", (*App).recoverCode},
	"sign":              {"--key KEY FIELD...", (*App).sign},
	"verify":            {"--key KEY|--pub PUB --sig SIG FIELD...", (*App).verify},
	"keys":              {"", (*App).keys},
	"forget":            {"--key KEY", (*App).forget},
}

var _ Client = (*App)(nil)

// App dispatches CLI subcommands to the client services.
type App struct {
	services *service.ClientServices

	in  *bufio.Reader
	out io.Writer

	// copyToClipboard backs add-codes --copy.
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services:        services,
		in:              bufio.NewReader(in),
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	log := a.logger.With().Str("command", args[0]).Logger()
	ctx = log.WithContext(ctx)

	started := time.Now()
	err := cmd.run(a, ctx, args[1:])
	log.Debug().Err(err).Dur("took", time.Since(started)).Msg("command finished")
	return err
}

// Usage lists every subcommand.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: keyplace COMMAND [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-18s %s\n", name, commands[name].usage)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := a.flagSet("signup")
	account := fs.String("account", "", "account id")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "contact email stored with the primary record")
	if err := a.parse(fs, args, "account", "name"); err != nil {
		return err
	}

	passphrase, err := a.readSecret("passphrase")
	if err != nil {
		return err
	}
	defer passphrase.Destroy()

	var emailPtr *string
	if *email != "" {
		emailPtr = email
	}

	id, session, err := a.services.RecoveryService.Signup(ctx, *account, *name, passphrase, emailPtr)
	if err != nil {
		return err
	}
	a.printSession(id, session)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	account := fs.String("account", "", "account id")
	label := fs.String("label", service.PrimaryLabel, "record label")
	if err := a.parse(fs, args, "account"); err != nil {
		return err
	}

	passphrase, err := a.readSecret("passphrase")
	if err != nil {
		return err
	}
	defer passphrase.Destroy()

	id, session, err := a.services.RecoveryService.Login(ctx, *account, *label, passphrase)
	if err != nil {
		return err
	}
	a.printSession(id, session)
	return nil
}

func (a *App) addQuestions(ctx context.Context, args []string) error {
	fs := a.flagSet("add-questions")
	session, key := a.sessionFlags(fs)
	if err := a.parse(fs, args, "account", "token", "key"); err != nil {
		return err
	}

	id, err := crypto.ParseAgentID(*key)
	if err != nil {
		return err
	}
	questions, err := a.readQuestions()
	if err != nil {
		return err
	}

	labels, err := a.services.RecoveryService.AddRecoveryQuestions(ctx, *session, id, questions)
	if err != nil {
		return err
	}
	for _, l := range labels {
		fmt.Fprintln(a.out, l)
	}
	return nil
}

func (a *App) addCodes(ctx context.Context, args []string) error {
	fs := a.flagSet("add-codes")
	session, key := a.sessionFlags(fs)
	n := fs.Int("n", defaultCodeCount, "number of printed codes")
	copyCodes := fs.Bool("copy", false, "copy the codes to the clipboard")
	if err := a.parse(fs, args, "account", "token", "key"); err != nil {
		return err
	}

	id, err := crypto.ParseAgentID(*key)
	if err != nil {
		return err
	}

	codes, err := a.services.RecoveryService.AddPrintedCodes(ctx, *session, id, *n)
	if err != nil {
		return err
	}

	for i, code := range codes {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, code)
	}
	if *copyCodes {
		if err = a.copyToClipboard(strings.Join(codes, "\n")); err != nil {
			// the codes are already printed, a clipboard failure is not fatal
			logger.FromContext(ctx).Warn().Err(err).Msg("clipboard unavailable")
			fmt.Fprintln(a.out, "could not copy codes to the clipboard")
		}
	}
	return nil
}

func (a *App) recoverQuestions(ctx context.Context, args []string) error {
	fs := a.flagSet("recover-questions")
	account := fs.String("account", "", "account id")
	if err := a.parse(fs, args, "account"); err != nil {
		return err
	}

	questions, err := a.readQuestions()
	if err != nil {
		return err
	}

	id, err := a.services.RecoveryService.RecoverWithQuestions(ctx, *account, questions)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "agent_id: %s\n", id)
	return nil
}

func (a *App) recoverCode(ctx context.Context, args []string) error {
	fs := a.flagSet("recover-code")
	account := fs.String("account", "", "account id")
	maxCodes := fs.Int("max", defaultMaxCodes, "number of printed code labels to try")
	if err := a.parse(fs, args, "account"); err != nil {
		return err
	}

	code, err := a.readLine("code")
	if err != nil {
		return err
	}

	id, err := a.services.RecoveryService.RecoverWithPrintedCode(ctx, *account, code, *maxCodes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "agent_id: %s\n", id)
	return nil
}

func (a *App) sign(ctx context.Context, args []string) error {
	fs := a.flagSet("sign")
	key := fs.String("key", "", "agent id")
	if err := a.parse(fs, args, "key"); err != nil {
		return err
	}

	id, err := crypto.ParseAgentID(*key)
	if err != nil {
		return err
	}

	sig, err := a.services.RecoveryService.SignMessage(ctx, id, fields(fs.Args())...)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sig.String())
	return nil
}

// verify needs only a public key: either --pub, or the one stored next to
// the sealed seed of --key.
func (a *App) verify(ctx context.Context, args []string) error {
	fs := a.flagSet("verify")
	key := fs.String("key", "", "agent id of a stored key")
	pubFlag := fs.String("pub", "", "public key (base64), instead of --key")
	sigFlag := fs.String("sig", "", "signature (base64)")
	if err := a.parse(fs, args, "sig"); err != nil {
		return err
	}

	sig, err := crypto.ParseSignatureString(*sigFlag)
	if err != nil {
		return err
	}

	var pub models.Key32
	switch {
	case *pubFlag != "":
		if pub, err = models.ParseKey32(*pubFlag); err != nil {
			return err
		}
		if *key != "" && crypto.NewAgentID(pub.AsBytes()) != crypto.AgentID(*key) {
			return fmt.Errorf("%w: --pub does not belong to %s", crypto.ErrInvalidReferent, *key)
		}
	case *key != "":
		id, err := crypto.ParseAgentID(*key)
		if err != nil {
			return err
		}
		if pub, err = a.services.KeyManager.PublicKey(ctx, id); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: --key or --pub", ErrMissingFlag)
	}

	if err = crypto.VerifyErr(pub.AsBytes(), sig, fields(fs.Args())...); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signature ok")
	return nil
}

func (a *App) keys(ctx context.Context, args []string) error {
	if err := a.parse(a.flagSet("keys"), args); err != nil {
		return err
	}

	ids, err := a.services.KeyManager.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

func (a *App) forget(ctx context.Context, args []string) error {
	fs := a.flagSet("forget")
	key := fs.String("key", "", "agent id")
	if err := a.parse(fs, args, "key"); err != nil {
		return err
	}

	id, err := crypto.ParseAgentID(*key)
	if err != nil {
		return err
	}
	return a.services.KeyManager.Delete(ctx, id)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parse parses args and checks that every flag in required was set to a
// non-empty value.
func (a *App) parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, name := range required {
		if f := fs.Lookup(name); f == nil || f.Value.String() == "" {
			return fmt.Errorf("%w: --%s", ErrMissingFlag, name)
		}
	}
	return nil
}

func (a *App) sessionFlags(fs *flag.FlagSet) (*models.Session, *string) {
	session := &models.Session{}
	fs.StringVar(&session.AccountID, "account", "", "account id")
	fs.StringVar(&session.Token, "token", "", "session token from signup or login")
	key := fs.String("key", "", "agent id")
	return session, key
}

func (a *App) printSession(id crypto.AgentID, session models.Session) {
	fmt.Fprintf(a.out, "agent_id: %s\n", id)
	fmt.Fprintf(a.out, "account_id: %s\n", session.AccountID)
	fmt.Fprintf(a.out, "token: %s\n", session.Token)
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "expires_at: %s\n", session.ExpiresAt.Format(time.RFC3339))
	}
}

// readLine returns the next non-empty input line without its line ending.
func (a *App) readLine(what string) (string, error) {
	for {
		line, err := a.in.ReadString('\n')
		if s := strings.TrimRight(line, "\r\n"); strings.TrimSpace(s) != "" {
			return s, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %s", ErrMissingInput, what)
			}
			return "", err
		}
	}
}

func (a *App) readSecret(what string) (*crypto.Secret, error) {
	line, err := a.readLine(what)
	if err != nil {
		return nil, err
	}
	return crypto.NewPassphrase(line), nil
}

// readQuestions reads "question=answer" lines up to EOF or an empty line.
// The last '=' separates the answer, so questions may contain '='.
func (a *App) readQuestions() ([]models.RecoveryQuestion, error) {
	var questions []models.RecoveryQuestion
	for {
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == "" {
			if err == nil && len(questions) == 0 {
				continue
			}
			break
		}

		i := strings.LastIndex(line, "=")
		if i <= 0 {
			return nil, ErrBadQuestion
		}
		questions = append(questions, models.RecoveryQuestion{Question: line[:i], Answer: line[i+1:]})

		if err != nil {
			break
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: recovery questions", ErrMissingInput)
	}
	return questions, nil
}

func fields(args []string) []crypto.Field {
	out := make([]crypto.Field, len(args))
	for i, arg := range args {
		out[i] = crypto.String(arg)
	}
	return out
}
