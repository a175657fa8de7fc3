package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultServer = "http://localhost:8080/api/v1"
	configName    = ".cafectl"
)

func main() {
	v := viper.New()
	if err := newRootCmd(v, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "cafectl",
		Short:         "Operate the cafe ordering service",
		Long:          `cafectl talks to the cafe admin API: log in, follow and advance orders, inspect the menu and import it from a spreadsheet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cafectl.yaml)")
	root.PersistentFlags().String("server", defaultServer, "API base URL")
	root.PersistentFlags().String("token", "", "admin session token")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().Bool("json", false, "print raw JSON")

	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		newLoginCmd(v),
		newOrdersCmd(v),
		newMenuCmd(v),
	)

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix("CAFECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func newClientFrom(v *viper.Viper) *Client {
	return NewClient(v.GetString("server"), v.GetString("token"), v.GetDuration("timeout"))
}
