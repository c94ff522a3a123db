package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-dashboard/internal/config"
	"github.com/BuzzLyutic/todo-dashboard/internal/extract"
	"github.com/BuzzLyutic/todo-dashboard/internal/logger"
	"github.com/BuzzLyutic/todo-dashboard/internal/repo"
	"github.com/BuzzLyutic/todo-dashboard/internal/service"
)

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type styles struct {
	header  lipgloss.Style
	file    lipgloss.Style
	count   lipgloss.Style
	summary lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		header:  r.NewStyle().Bold(true),
		file:    r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		count:   r.NewStyle().Foreground(lipgloss.Color("#38bdf8")),
		summary: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e")),
	}
}

// newRootCmd: log == nil means build the logger from config
func newRootCmd(out io.Writer, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "todo-sync",
		Short:         "Extract checkbox tasks from markdown notes into a snapshot",
		Long:          "Scans the notes directory for '- [ ]' task lines and writes the todos.json snapshot read by the dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if log == nil {
				log, err = logger.New(cfg.Debug)
				if err != nil {
					return fmt.Errorf("failed to init logger: %w", err)
				}
				defer logger.Sync(log)
			}

			st := newStyles(out)
			fmt.Fprintln(out, st.header.Render("📂 Scanning: "+cfg.NotesDir))

			extractor := extract.NewExtractor(cfg.NotesDir)
			// строка на каждый файл сразу после чтения, до записи снапшота
			extractor.OnFile(func(f extract.FileResult) {
				fmt.Fprintf(out, "  ✓ %s: %s\n", st.file.Render(f.Name), st.count.Render(fmt.Sprintf("%d tasks", len(f.Tasks))))
			})

			svc := service.NewSyncService(extractor, repo.NewFileRepo(cfg.SnapshotPath))
			report, err := svc.Run(cmd.Context())
			if err != nil {
				log.Error("sync failed", zap.String("notes_dir", cfg.NotesDir), zap.Error(err))
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, st.summary.Render(fmt.Sprintf("✅ Synced %d todos to %s", len(report.Snapshot.Tasks), cfg.SnapshotPath)))

			log.Debug("sync finished",
				zap.Int("files", len(report.Files)),
				zap.Int("todos", len(report.Snapshot.Tasks)),
				zap.Time("generated_at", report.Snapshot.GeneratedAt),
			)
			return nil
		},
	}
}
