package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/joeydtaylor/steeze-lite/internal/demo"
	"github.com/joeydtaylor/steeze-lite/pkg/codec"
	"github.com/joeydtaylor/steeze-lite/pkg/config"
	"github.com/joeydtaylor/steeze-lite/pkg/core"
	"github.com/joeydtaylor/steeze-lite/pkg/routerfx"
)

type dispatchOptions struct {
	payloadPath string
	logLevel    string
}

func newDispatchCmd() *cobra.Command {
	var opts dispatchOptions
	cmd := &cobra.Command{
		Use:   "dispatch <route>",
		Short: "Dispatch a JSON payload to a demo route and print the output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, args[0], opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.payloadPath, "file", "f", "-", "JSON object payload; - reads stdin")
	fs.StringVar(&opts.logLevel, "log-level", "", "override $STEEZE_LOG_LEVEL")
	return cmd
}

func runDispatch(cmd *cobra.Command, route string, opts dispatchOptions) error {
	payload, err := readPayload(cmd.InOrStdin(), opts.payloadPath)
	if err != nil {
		return err
	}
	fields, err := codec.DecodeObject(codec.JSON, payload)
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	var d core.Dispatcher
	app := fx.New(
		routerfx.Module(routerfx.Static(demo.Router{}), routerfx.WithConfig(cfg)),
		fx.Populate(&d),
	)
	if err := app.Err(); err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(ctx) }()

	out, err := codec.JSON.Marshal(d.Dispatch(route, core.NewInput(fields)))
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return b, nil
}
