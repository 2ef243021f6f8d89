package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/infrastructure/onboardingapi"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL string
	token   string
	userID  string
	timeout time.Duration
	verbose bool

	logger *logging.Logger
}

func (o *options) client() (*onboardingapi.Client, error) {
	if strings.TrimSpace(o.token) == "" {
		return nil, fmt.Errorf("access token is required (--token or ONBOARDING_TOKEN)")
	}
	return onboardingapi.NewClient(nil, onboardingapi.Config{
		BaseURL: o.baseURL,
		Token:   o.token,
		Timeout: o.timeout,
	}, o.logger), nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "wizard",
		Short:         "Drive the onboarding wizard against the onboarding API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.LevelWarn
			if opts.verbose {
				level = logging.LevelDebug
			}
			opts.logger = logging.NewConsole(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", envOr("ONBOARDING_BASE_URL", "http://localhost:8080"), "Onboarding API base URL (ONBOARDING_BASE_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("ONBOARDING_TOKEN"), "Bearer access token (ONBOARDING_TOKEN)")
	root.PersistentFlags().StringVar(&opts.userID, "user", envOr("ONBOARDING_USER_ID", "me"), "User label used in logs (ONBOARDING_USER_ID)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", envDuration("ONBOARDING_TIMEOUT", 15*time.Second), "Request timeout (ONBOARDING_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newRunCmd(opts),
		newStatusCmd(opts),
		newSkipCmd(opts),
		newLearningPathCmd(opts),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
