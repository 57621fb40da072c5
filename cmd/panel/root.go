package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/anonto42/nano-midea/notifications/internal/assets"
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
	"github.com/anonto42/nano-midea/notifications/internal/tui"
	"github.com/anonto42/nano-midea/notifications/pkg/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "panel",
		Short:         "Interactive notifications panel in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			altScreen, _ := cmd.Flags().GetBool("alt-screen")

			p, err := newPanel()
			if err != nil {
				return err
			}

			var opts []tea.ProgramOption
			if altScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			return tui.Run(p, opts...)
		},
	}
	cmd.Flags().Bool("alt-screen", true, "use the terminal's alternate screen")

	cmd.AddCommand(newPrintCmd())
	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the panel once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPanel()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Terminal(p.View(), render.TerminalOptions{Cursor: -1}))
			return err
		},
	}
}

func newPanel() (*panel.Panel, error) {
	cfg := config.Load()
	repo, err := repositories.NewMemoryNotificationRepository(models.SeedNotifications())
	if err != nil {
		return nil, fmt.Errorf("failed to seed notifications: %w", err)
	}
	// the terminal owns stdout, so logs are dropped
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return panel.New(repo, assets.NewBaseURLResolver(cfg.AssetBaseURL), nil, logger), nil
}
