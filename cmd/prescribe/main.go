// prescribe runs the daily prescription cycle outside the api server, for
// use from cron or a scheduled job.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/app"
	"github.com/limbo/mindrep/internal/batch"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/cleanup"
	"github.com/limbo/mindrep/pkg/config"
	"github.com/spf13/cobra"
)

var opts batch.Options

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	cleanup.CleanUp()
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "prescribe",
		Short:        "Batch jobs for MindRep prescriptions and correlations",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVarP(&opts.Concurrency, "concurrency", "c", batch.DefaultConcurrency, "users processed in parallel")
	root.PersistentFlags().IntVar(&opts.PageSize, "page-size", batch.DefaultPageSize, "user ids fetched per page")
	root.AddCommand(dailyCmd(), recomputeCmd(), correlationsCmd())
	return root
}

func runner() (*batch.Runner, *app.Services) {
	services, err := app.Build(config.New())
	if err != nil {
		log.Fatal("building services error: " + err.Error())
	}
	return batch.NewRunner(services.UsersRepo, services.Prescriptions, services.Correlations, opts), services
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := sonic.ConfigDefault.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Issue today's prescription for every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _ := runner()
			rep, err := r.Daily(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, rep)
		},
	}
}

func recomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Recompute correlation snapshots for every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _ := runner()
			rep, err := r.Recompute(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, rep)
		},
	}
}

func correlationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correlations <uid>",
		Short: "Print the latest correlation snapshot of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			_, services := runner()
			rows, err := services.Correlations.Latest(cmd.Context(), uid)
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		},
	}
}
