// Command send posts a single SMS and prints the provider's raw answer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/oggyb/sms-dispatch/internal/config"
	"github.com/oggyb/sms-dispatch/internal/sms"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Exit codes.
const (
	exitOK = iota
	exitConfig
	exitValidation
	exitTransport
)

type options struct {
	token      string
	url        string
	insecure   bool
	from       string
	text       string
	recipients []string
}

func main() {
	cfg := config.New()

	app := kingpin.New("send", "Send one SMS through the configured provider.")
	opts := bindFlags(app, cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, opts, cfg, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func bindFlags(app *kingpin.Application, cfg *config.Config) *options {
	o := &options{}

	app.Flag("token", "Bearer token for the SMS API.").
		Default(cfg.SMS.APIToken).StringVar(&o.token)
	app.Flag("url", "SMS API endpoint.").
		Default(cfg.SMS.APIURL).StringVar(&o.url)
	app.Flag("insecure", "Skip TLS certificate and hostname verification.").
		Default(fmt.Sprint(!cfg.SMS.VerifyTLS)).BoolVar(&o.insecure)
	app.Flag("from", "Sender name or number.").
		Short('f').Required().StringVar(&o.from)
	app.Flag("text", "Message text.").
		Short('t').Required().StringVar(&o.text)
	app.Arg("recipients", "Recipient phone numbers.").
		Required().StringsVar(&o.recipients)

	return o
}

func run(ctx context.Context, o *options, cfg *config.Config, stdout, stderr io.Writer) int {
	client, err := sms.New(o.token, o.url,
		sms.WithVerifyTLS(!o.insecure),
		sms.WithTimeout(cfg.SMS.HTTPTimeout),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitConfig
	}

	res, err := client.Send(ctx, o.recipients, o.from, o.text)
	switch {
	case errors.Is(err, sms.ErrValidation):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitValidation
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitTransport
	}

	fmt.Fprintf(stdout, "status: %d\n%s\n", res.StatusCode, res.Body)
	return exitOK
}
