package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yarlson/loadbar/internal/document"
	"github.com/yarlson/loadbar/internal/progress"
)

// Render command flags
var (
	renderType       string
	renderBackground string
	renderHeight     int
	renderSVGFile    string
	renderTicks      int
	renderComplete   bool
	renderOutput     string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page.html]",
		Short: "Render the indicator into an HTML page",
		Long: `Render parses an HTML page (an empty page when none is given), starts the
indicator on it, lets the given number of timer ticks elapse and writes the
resulting page. With --complete the run is finished before writing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringVarP(&renderType, "type", "t", "", "display type: bar or fullpage (default from config)")
	cmd.Flags().StringVar(&renderBackground, "background", "", "background color (default from config)")
	cmd.Flags().IntVar(&renderHeight, "height", 0, "bar height in px (default from config)")
	cmd.Flags().StringVar(&renderSVGFile, "svg-file", "", "file holding the overlay SVG markup")
	cmd.Flags().IntVarP(&renderTicks, "ticks", "n", 0, "number of timer ticks to let elapse")
	cmd.Flags().BoolVar(&renderComplete, "complete", false, "complete the run before writing")
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the page to this file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts, err := s.cfg.ProgressOptions(appFs)
	if err != nil {
		return err
	}
	if err := applyTypeFlag(cmd, &opts, renderType); err != nil {
		return err
	}
	if renderBackground != "" {
		opts.Background = renderBackground
	}
	if renderHeight > 0 {
		opts.Height = renderHeight
	}
	if renderSVGFile != "" {
		data, err := afero.ReadFile(appFs, renderSVGFile)
		if err != nil {
			return fmt.Errorf("failed to read svg file: %w", err)
		}
		opts.SVG = string(data)
	}
	if renderTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}

	doc, err := loadPage(args)
	if err != nil {
		return err
	}

	clock := progress.NewManualClock(time.Unix(0, 0))
	ctrl := s.newController(doc, clock)
	ctrl.Configure(opts)
	ctrl.Start()

	interval := s.cfg.Progress.TickInterval
	if interval <= 0 {
		interval = progress.DefaultTickInterval
	}
	clock.Advance(time.Duration(renderTicks) * interval)

	if renderComplete {
		ctrl.Complete()
	}

	s.log.Debug().
		Str("type", string(ctrl.Options().Type)).
		Int("ticks", renderTicks).
		Float64("fraction", ctrl.Fraction()).
		Bool("complete", renderComplete).
		Msg("page rendered")

	return writePage(cmd.OutOrStdout(), doc)
}

func loadPage(args []string) (*document.Document, error) {
	if len(args) == 0 {
		return document.New(), nil
	}

	f, err := appFs.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = f.Close() }()

	return document.Parse(f)
}

func writePage(stdout io.Writer, doc *document.Document) error {
	if renderOutput == "" {
		return doc.Render(stdout)
	}

	f, err := appFs.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := doc.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
