package cli

import (
	"context"
	"os"

	"vpaas/internal/config"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
)

type options struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vpaas",
		Short: "VPAAS - video platform as a service",
		Long: "Command line client for the VPAAS orchestrator.\n\n" +
			"Uploads local videos for downscaling the same way the web front end does.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file (defaults to $CONFIG_PATH)")

	cmd.AddCommand(newUploadCmd(opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	zlog.Init()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
