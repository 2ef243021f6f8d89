package main

import (
	"fmt"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/wizard"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		answersPath string
		complete    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the wizard from a YAML file and optionally complete it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			status, err := client.GetStatus(ctx, opts.userID)
			if err != nil {
				return fmt.Errorf("load onboarding status: %w", err)
			}
			if status.IsCompleted {
				opts.logger.Warn("onboarding already completed", "user_id", opts.userID)
				return render(cmd.OutOrStdout(), newStatusView(status))
			}

			c := wizard.Resume(client, status.Record, wizard.AutoSaveConfig{Logger: opts.logger})
			defer c.Close()

			if err := c.Update(a.apply); err != nil {
				return err
			}
			for c.Step() < onboarding.LastStep {
				step := c.Step()
				if err := c.Next(ctx); err != nil {
					return fmt.Errorf("advance from step %d: %w", step, err)
				}
				opts.logger.Debug("wizard step saved", "step", c.Step(), "completion_percentage", c.CompletionPercentage())
			}

			if !complete {
				return render(cmd.OutOrStdout(), progressView{
					CurrentStep:          c.Step(),
					CompletionPercentage: c.CompletionPercentage(),
				})
			}

			completion, err := c.Complete(ctx)
			if err != nil {
				return fmt.Errorf("complete onboarding: %w", err)
			}
			return render(cmd.OutOrStdout(), newCompletionView(completion))
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "f", "", "YAML answers file")
	cmd.Flags().BoolVar(&complete, "complete", true, "Complete onboarding after the last step is saved")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored onboarding state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			status, err := client.GetStatus(cmd.Context(), opts.userID)
			if err != nil {
				return fmt.Errorf("load onboarding status: %w", err)
			}
			return render(cmd.OutOrStdout(), newStatusView(status))
		},
	}
}

func newSkipCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Skip onboarding and store the default profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			rec, err := client.Skip(cmd.Context(), opts.userID)
			if err != nil {
				return fmt.Errorf("skip onboarding: %w", err)
			}
			return render(cmd.OutOrStdout(), newRecordView(rec))
		},
	}
}

func newLearningPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "learning-path",
		Short: "Show the learning path generated for a completed profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			path, err := client.GetLearningPath(cmd.Context(), opts.userID)
			if err != nil {
				return fmt.Errorf("load learning path: %w", err)
			}
			return render(cmd.OutOrStdout(), newLearningPathView(path))
		},
	}
}
