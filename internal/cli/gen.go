package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joeydtaylor/steeze-lite/pkg/config"
	"github.com/joeydtaylor/steeze-lite/pkg/manifest"
	"github.com/joeydtaylor/steeze-lite/pkg/routegen"
)

type genOptions struct {
	manifestPath string
	outPath      string
}

func newGenCmd() *cobra.Command {
	var opts genOptions
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a static dispatcher from a route manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.manifestPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				opts.manifestPath = cfg.Manifest
			}
			return runGen(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.manifestPath, "manifest", "m", "", "route manifest (.toml, .yaml); defaults to $STEEZE_MANIFEST or routes.toml")
	fs.StringVarP(&opts.outPath, "out", "o", "", "output file; stdout when empty")
	return cmd
}

func runGen(cmd *cobra.Command, opts genOptions) error {
	cfg, err := manifest.Load(opts.manifestPath)
	if err != nil {
		return err
	}
	src, err := routegen.Generate(cfg, filepath.Base(opts.manifestPath))
	if err != nil {
		return fmt.Errorf("generate %s: %w", opts.manifestPath, err)
	}
	if opts.outPath == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(opts.outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outPath, err)
	}
	return nil
}
