package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/heathj/domkit/props"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const logLevelEnv = "DOMKIT_LOG_LEVEL"

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "domkit",
		Short: "Build DOM elements from selectors",
		Long: `domkit builds an element from a selector such as div#main.wide,
applies properties and text to it and prints the resulting HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return errors.Wrap(err, "--log-level")
			}
			logrus.SetLevel(lvl)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = logrus.WarnLevel.String()
	}
	cmd.PersistentFlags().StringVar(&level, "log-level", defaultLevel, "log level (env "+logLevelEnv+")")

	cmd.AddCommand(tagCmd(), mergeCmd())
	return cmd
}

// parseProps reads name=value pairs into a bag. A bare name is set to true,
// which switches on boolean properties such as disabled.
func parseProps(pairs []string) (*props.Props, error) {
	p := props.New()
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.Errorf("property %q has no name", pair)
		}
		if !found {
			p.Set(name, true)
			continue
		}
		p.Set(name, value)
	}
	return p, nil
}
