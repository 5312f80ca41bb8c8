package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/rules"
)

var watchLog = logger.New("cli:watch_command")

const watchDebounce = 300 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [folder]",
		Short: "Re-validate a project whenever its files change",
		Long: `Watch a project folder and re-run project validation whenever the
configuration or a workflow file changes. Defaults to the current
directory. Stop with Ctrl-C.

Examples:
  flowlint watch                  # Watch the current directory
  flowlint watch ./shop-sync      # Watch a specific project
  flowlint watch --strict         # Strict validation on every run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filterOptions(cmd)

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runWatch(cmd, dir, opts)
		},
	}

	addFilterFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, dir string, opts lint.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTargets(watcher, dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()
	v := lint.NewValidator(rules.Default())
	revalidate := func() {
		result := v.ValidateProject(dir, opts)
		writeTextResult(out, result)
		fmt.Fprintln(out, "")
	}

	fmt.Fprintln(out, console.FormatInfoMessage("watching "+dir))
	revalidate()

	var timer *time.Timer
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchLog.Printf("Event: %s", ev)
			// New subdirectories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := watcher.Add(ev.Name); addErr != nil {
						watchLog.Printf("Cannot watch %s: %v", ev.Name, addErr)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, revalidate)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("watch error: %v", watchErr)))
		}
	}
}

// addWatchTargets watches the project folder and its workflows subfolder.
// Watching the folders rather than individual files survives the
// delete-and-rename save strategy of most editors.
func addWatchTargets(w *fsnotify.Watcher, dir string) error {
	if err := w.Add(dir); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := w.Add(dir + string(os.PathSeparator) + e.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}
