package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salvobee/laravel-resource-route/internal/manifest"
	"github.com/salvobee/laravel-resource-route/internal/watcher"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a routes manifest",
		RunE:  runCheck,
	}
	cmd.Flags().String("config", "routes.yml", "routes manifest to validate")
	cmd.Flags().Bool("watch", false, "re-validate whenever the manifest changes")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	watch, _ := cmd.Flags().GetBool("watch")

	if !watch {
		if !checkOnce(path) {
			os.Exit(1)
		}
		return nil
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	checkOnce(path)
	log.Info("watching manifest", "path", path)

	changes := make(chan struct{}, 1)
	w := watcher.New(path, func() {
		// Coalesce bursts of events from a single save.
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-changes:
			log.Info("manifest changed", "path", path)
			checkOnce(path)
		case <-sigCh:
			return nil
		}
	}
}

// checkOnce loads and validates the manifest, printing a colored verdict.
func checkOnce(path string) bool {
	m, err := manifest.Load(path)
	if err == nil {
		err = m.Validate()
	}
	if err != nil {
		color.New(color.FgRed, color.Bold).Print("FAIL")
		fmt.Printf(" %s\n  %v\n", path, err)
		return false
	}
	color.New(color.FgGreen, color.Bold).Print("OK")
	fmt.Printf("   %s (%d resources)\n", path, len(m.Resources))
	return true
}
