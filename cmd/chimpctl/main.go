package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/client"
	"github.com/lzjever/chimpgate/internal/observability"
)

var (
	cfgFile string
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "chimpctl",
	Short: "chimpctl - MailChimp and Mandrill API command line tool",
	Long: `chimpctl calls the MailChimp, MailChimp Export, STS, Partner and Mandrill
APIs, runs the MailChimp OAuth2 flow and manages accounts stored by chimpgate.

Every flag can also be set in the config file or as CHIMPCTL_<FLAG>.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default .chimpctl.yaml in $HOME or the working directory)")
	f.String("api-key", "", "MailChimp or Mandrill API key")
	f.String("api-version", "", "API version (default: the API's default version)")
	f.Bool("secure", true, "talk HTTPS to the remote API")
	f.Duration("timeout", 30*time.Second, "timeout of one remote call")
	f.StringP("output", "o", "table", "Output format (table, json, yaml)")
	f.String("gateway-url", "http://localhost:8080", "chimpgate URL")
	f.String("log-level", "warn", "log level")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".chimpctl")
	}
	viper.SetEnvPrefix("CHIMPCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	switch viper.GetString("output") {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", viper.GetString("output"))
	}

	log, err := observability.NewConsoleLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	logger = log
	return nil
}

// newAPIClient builds a client from the global flags.
func newAPIClient(api catalog.API) (*client.Client, error) {
	return client.New(api, viper.GetString("api-key"),
		client.WithVersion(viper.GetString("api-version")),
		client.WithSecure(viper.GetBool("secure")),
		client.WithTimeout(viper.GetDuration("timeout")),
		client.WithUserAgent("chimpctl"),
		client.WithLogger(logger),
	)
}
