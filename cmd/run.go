package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yarlson/loadbar/internal/terminal"
)

// Run command flags
var (
	runType  string
	runLabel string
	runWidth int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -- command [args...]",
		Short: "Show the indicator in the terminal while a command runs",
		Long: `Run starts the indicator on the terminal, executes the command and
completes the indicator when the command exits. The command's exit status
is reported as an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}

	cmd.Flags().StringVarP(&runType, "type", "t", "", "display type: bar or fullpage (default from config)")
	cmd.Flags().StringVarP(&runLabel, "label", "l", "", "text shown in the fullpage box (default: the command)")
	cmd.Flags().IntVarP(&runWidth, "width", "w", 0, "frame width in cells (default from config, then terminal)")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts, err := s.cfg.ProgressOptions(appFs)
	if err != nil {
		return err
	}
	if err := applyTypeFlag(cmd, &opts, runType); err != nil {
		return err
	}

	width := s.cfg.Terminal.Width
	if runWidth > 0 {
		width = runWidth
	}
	label := runLabel
	if label == "" {
		label = strings.Join(args, " ")
	}

	out := cmd.ErrOrStderr()
	plain := !isTerminal(out)
	screen := terminal.NewScreen(terminal.Options{
		Output: out,
		Width:  width,
		Label:  label,
		ASCII:  plain,
	})
	ctrl := s.newController(screen, nil)
	ctrl.Configure(opts)
	renderer := terminal.NewRenderer(screen, out, s.cfg.Terminal.Refresh)
	renderer.SetPlain(plain)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	child := exec.CommandContext(ctx, args[0], args[1:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = renderer.Writer()

	started := time.Now()
	renderer.Start()
	ctrl.Start()
	runErr := child.Run()
	ctrl.Complete()
	renderer.Stop()

	s.log.Debug().
		Str("command", args[0]).
		Dur("elapsed", time.Since(started)).
		Msg("command finished")

	if runErr != nil {
		return fmt.Errorf("command %s failed: %w", args[0], runErr)
	}
	return nil
}
