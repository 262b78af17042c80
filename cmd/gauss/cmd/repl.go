package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/config"
	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/internal/gauss/service"
	"github.com/msto63/gauss/internal/tui"
)

var replWatch bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet den interaktiven Auswerter",
	Long: `Startet den interaktiven Auswerter im Terminal. Jede Zeile ist ein
Funktionsaufruf wie bei "gauss call"; Argumente mit Leerzeichen werden in
doppelte Anführungszeichen gesetzt.

Änderungen an der Config-Datei und an calendar.holidays_file werden
übernommen, ohne den Auswerter neu zu starten (abschaltbar mit --watch=false).

Navigation:
  Tab       - Zwischen Auswerten, Funktionen und Feiertagen wechseln
  Enter     - Zeile auswerten
  ↑/↓       - Verlauf durchblättern
  Ctrl+L    - Ausgaben leeren
  Ctrl+C    - Beenden`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replWatch, "watch", true, "Config- und Feiertagsdatei überwachen")
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reloads chan tui.ReloadMsg
	if replWatch {
		var err error
		if reloads, err = watchConfig(ctx); err != nil {
			return err
		}
	}

	logger.Debug("starting repl", mdwlog.Field("watch", reloads != nil))
	if err := tui.Run(svc, logger, reloads); err != nil {
		return mdwerror.Wrap(err, "repl failed").WithOperation("cmd.repl")
	}
	return nil
}

// watchConfig reports a rebuilt service whenever the configuration file or
// the holiday file changes. It returns nil when neither file is set.
func watchConfig(ctx context.Context) (chan tui.ReloadMsg, error) {
	paths := watchedFiles(activeConfig)
	if len(paths) == 0 {
		return nil, nil
	}

	reloads := make(chan tui.ReloadMsg, 1)
	w, err := config.NewWatcher(paths, 0, func(path string) {
		next, err := reloadService()
		msg := tui.ReloadMsg{Path: path, Err: err}
		if err == nil {
			msg.Eval = next
		}
		select {
		case reloads <- msg:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return nil, err
	}
	w.OnError(func(err error) {
		logger.WarnWithErr("file watcher error", err)
	})

	go func() {
		_ = w.Run(ctx)
	}()
	logger.Debug("watching files", mdwlog.Field("files", w.Files()))
	return reloads, nil
}

func watchedFiles(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}
	var paths []string
	for _, p := range []string{cfg.FilePath(), cfg.GetString(service.KeyHolidaysFile)} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
