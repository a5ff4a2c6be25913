package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lzjever/chimpgate/internal/core"
	"github.com/lzjever/chimpgate/internal/oauth"
	"github.com/lzjever/chimpgate/internal/statestore"
)

type AuthedRow struct {
	APIKey      string `json:"api_key" yaml:"api_key"`
	DC          string `json:"dc" yaml:"dc"`
	AccountName string `json:"account_name" yaml:"account_name"`
	LoginEmail  string `json:"login_email" yaml:"login_email"`
	APIEndpoint string `json:"api_endpoint" yaml:"api_endpoint"`
}

var oauthCmd = &cobra.Command{
	Use:   "oauth",
	Short: "MailChimp OAuth2 commands",
}

var oauthURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the MailChimp authorization URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, err := newAuthorizer(nil)
		if err != nil {
			return err
		}
		fmt.Println(auth.AuthorizeURL(viper.GetString("state")))
		return nil
	},
}

var oauthListenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run the redirect listener and print the API key once authorized",
	Long: `Run a local listener for the OAuth2 redirect. Open the printed URL in a
browser; once MailChimp redirects back, the code is exchanged and the API key
of the account is printed. The redirect URI must reach this listener.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		states := statestore.NewMemory()
		auth, err := newAuthorizer(stateValidator(states))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if d := viper.GetDuration("wait"); d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}

		state := core.NewState()
		if err := states.Put(ctx, state, "", 0); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Open this URL in a browser:\n\n  %s\n\n", auth.AuthorizeURL(state))

		events, unsubscribe := auth.Subscribe(16)
		defer unsubscribe()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return auth.ListenAndServe(gctx)
		})
		g.Go(func() error {
			for {
				select {
				case ev := <-events:
					if ev.Type == oauth.EventError {
						logger.Warn("oauth error", zap.String("error", ev.Err.Message))
					} else {
						logger.Info("oauth event", zap.String("event", string(ev.Type)))
					}
				case <-gctx.Done():
					return nil
				}
			}
		})
		var res oauth.Result
		g.Go(func() error {
			defer cancel()
			r, err := auth.Wait(gctx)
			if err != nil {
				return err
			}
			res = r
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		md := res.Metadata
		return printResult(AuthedRow{
			APIKey:      res.APIKey,
			DC:          md.DC,
			AccountName: md.AccountName,
			LoginEmail:  md.Login.LoginEmail,
			APIEndpoint: md.APIEndpoint,
		})
	},
}

// stateValidator redeems the state of a redirect, so only the flow started
// here reaches the code exchange, and only once.
func stateValidator(states statestore.Store) func(context.Context, string) error {
	return func(ctx context.Context, state string) error {
		_, err := states.Take(ctx, state)
		return err
	}
}

func newAuthorizer(validate func(context.Context, string) error) (*oauth.Authorizer, error) {
	return oauth.New(oauth.Config{
		ClientID:        viper.GetString("client-id"),
		ClientSecret:    viper.GetString("client-secret"),
		RedirectURI:     viper.GetString("redirect-uri"),
		AddPort:         viper.GetBool("add-port"),
		Port:            viper.GetInt("port"),
		FinalURI:        viper.GetString("final-uri"),
		ValidateState:   validate,
		TLSCertFile:     viper.GetString("tls-cert"),
		TLSKeyFile:      viper.GetString("tls-key"),
		UserAgent:       "chimpctl",
		ExchangeTimeout: viper.GetDuration("timeout"),
		Logger:          logger,
	})
}

func init() {
	f := oauthCmd.PersistentFlags()
	f.String("client-id", "", "OAuth2 client id")
	f.String("client-secret", "", "OAuth2 client secret")
	f.String("redirect-uri", "", "redirect URI registered with MailChimp")
	f.Bool("add-port", false, "append :<port> to the redirect URI")
	f.Int("port", oauth.DefaultPort, "listener port")

	oauthURLCmd.Flags().String("state", "", "opaque state echoed back on the redirect")

	lf := oauthListenCmd.Flags()
	lf.String("final-uri", "", "where to send the browser once the code arrived")
	lf.String("tls-cert", "", "TLS certificate file")
	lf.String("tls-key", "", "TLS key file")
	lf.Duration("wait", 10*time.Minute, "give up after this long (0 waits forever)")

	oauthCmd.AddCommand(oauthURLCmd, oauthListenCmd)
	rootCmd.AddCommand(oauthCmd)
}
