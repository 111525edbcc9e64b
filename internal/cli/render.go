package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nematode/internal/config"
	"nematode/pkg/document"
	"nematode/pkg/layout"
	"nematode/pkg/render"
)

var errMismatch = errors.New("render differs from reference")

type renderOpts struct {
	output    string
	width     int
	height    int
	expect    string
	tolerance int
}

func (o *renderOpts) bind(cmd *cobra.Command, outputUsage string) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", outputUsage)
	cmd.Flags().IntVar(&o.width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().IntVar(&o.height, "height", 0, "canvas height in pixels (default from config)")
	cmd.Flags().StringVar(&o.expect, "expect", "", "reference PNG the render must match")
	cmd.Flags().IntVar(&o.tolerance, "tolerance", 2, "allowed per-channel difference when comparing with --expect")
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Paint the box areas of a tree document to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if opts.output == "" {
				opts.output = cfg.Render.Output
			}

			root, err := document.Load(args[0])
			if err != nil {
				return err
			}
			return renderPNG(cmd, cfg, root, opts)
		},
	}

	opts.bind(cmd, "output PNG path (default from config)")
	return cmd
}

func renderPNG(cmd *cobra.Command, cfg *config.Config, root *layout.Element, opts renderOpts) error {
	log := loggerFromContext(cmd.Context())

	width, height := cfg.Viewport.Width, cfg.Viewport.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	background, err := colorful.Hex(cfg.Render.Background)
	if err != nil {
		return fmt.Errorf("render.background: %w", err)
	}
	palette := render.DefaultPalette
	palette.Background = background

	r := render.NewRenderer(width, height)
	r.SetPalette(palette)
	r.Render(root)
	if err := r.SavePNG(opts.output); err != nil {
		return fmt.Errorf("save %s: %w", opts.output, err)
	}

	log.Info("Rendered tree",
		zap.String("output", opts.output),
		zap.Int("width", width),
		zap.Int("height", height))

	if opts.expect == "" {
		return nil
	}
	return compareReference(cmd, r, opts)
}

// compareReference checks the render against --expect. On mismatch a diff
// image is written next to the output.
func compareReference(cmd *cobra.Command, r *render.Renderer, opts renderOpts) error {
	log := loggerFromContext(cmd.Context())

	expected, err := render.LoadPNG(opts.expect)
	if err != nil {
		return err
	}
	d, err := render.Compare(r.Image(), expected, opts.tolerance)
	if err != nil {
		return err
	}
	if d.Match {
		log.Info("Render matches reference", zap.String("reference", opts.expect))
		return nil
	}

	diffPath := strings.TrimSuffix(opts.output, ".png") + ".diff.png"
	if err := render.SaveImagePNG(d.Image, diffPath); err != nil {
		return fmt.Errorf("save %s: %w", diffPath, err)
	}
	return fmt.Errorf("%w: %d of %d pixels differ (max channel difference %d), see %s",
		errMismatch, d.DifferentPixels, d.TotalPixels, d.MaxDifference, diffPath)
}
