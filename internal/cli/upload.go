package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vpaas/internal/domain"
	"vpaas/internal/upload"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
)

type uploadOptions struct {
	endpoint string
	width    uint32
	height   uint32
	timeout  time.Duration
}

func newUploadCmd(opts *options) *cobra.Command {
	uopts := &uploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a video to be downscaled",
		Long: `Upload a local video file to the orchestrator.

The file is sent as a multipart form together with the target
dimensions (320x240 unless configured otherwise).

Examples:
  vpaas upload clip.mp4
  vpaas upload --endpoint http://10.0.0.5:9000/videos --width 640 --height 480 clip.mov`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, opts, uopts, args[0])
		},
	}

	cmd.Flags().StringVar(&uopts.endpoint, "endpoint", "", "Upload endpoint URL")
	cmd.Flags().Uint32Var(&uopts.width, "width", 0, "Target width in pixels")
	cmd.Flags().Uint32Var(&uopts.height, "height", 0, "Target height in pixels")
	cmd.Flags().DurationVar(&uopts.timeout, "timeout", 0, "Request timeout (0 disables it)")

	return cmd
}

func runUpload(cmd *cobra.Command, opts *options, uopts *uploadOptions, path string) error {
	cfg := opts.cfg.Upload
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = uopts.endpoint
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = uopts.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = uopts.height
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = uopts.timeout
	}

	selection, closeFile, err := selectFile(path)
	if err != nil {
		return err
	}
	defer closeFile()

	client := upload.NewClient(cfg.Endpoint, cfg.Timeout, &zlog.Logger)
	req := upload.NewRequest(selection, domain.NewDimensions(cfg.Width, cfg.Height))

	receipt, err := client.Submit(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Queued job %s\n", receipt.ID)
	if receipt.OutputURI != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", receipt.OutputURI)
	}
	return nil
}

func selectFile(path string) (upload.Selection, func(), error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s: %w", path, err)
	}

	return upload.FileSelected{
		Name:        filepath.Base(path),
		ContentType: mtype.String(),
		Size:        info.Size(),
		Body:        f,
	}, func() { f.Close() }, nil
}
