package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"epichub/internal/blobstore"
	"epichub/internal/config"
	"epichub/internal/seed"
	"epichub/internal/server"
	"epichub/internal/store"
)

func newSrvCmd(cfg *config.Config) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "srv",
		Short: "Run the EPIC Hub API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return fmt.Errorf("config not initialized")
			}

			logger := slog.Default().With("component", "server")

			st := store.New()

			if seedPath == "" {
				seedPath = cfg.SeedPath
			}
			if seedPath != "" {
				manifest, err := seed.LoadFile(seedPath)
				if err != nil {
					return err
				}
				if err := seed.Apply(manifest, st); err != nil {
					return err
				}
				logger.Info("seeded store", "path", seedPath, "projects", len(manifest.Projects))
			}

			blobs, err := blobstore.NewLocalDir(cfg.UploadsDir)
			if err != nil {
				return err
			}

			srv := server.New(cfg.ListenAddr(), st, blobs, server.Options{
				ClientDir:          cfg.ClientDir,
				MaxBodyBytes:       cfg.MaxBodyBytes,
				UploadMaxBodyBytes: cfg.UploadMaxBodyBytes,
			}, logger)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML manifest of projects and tasks to load at startup")
	return cmd
}
