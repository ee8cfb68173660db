package main

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"epichub/internal/api"
	"epichub/internal/config"
)

func newFileCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage project files",
	}

	cmd.AddCommand(
		newFileUploadCmd(cfg, jsonOutput),
		newFileListCmd(cfg, jsonOutput),
		newFileDownloadCmd(cfg),
		newFileDeleteCmd(cfg),
	)
	return cmd
}

func newFileUploadCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var fileType string
	cmd := &cobra.Command{
		Use:   "upload <project-id> <path>",
		Short: "Upload a local file to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("project id and file path are required")
			}
			projectID, err := parseIDArg(args[0], "project id")
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			req := api.FileUploadRequest{
				Filename: filepath.Base(args[1]),
				FileType: fileType,
				Base64:   base64.StdEncoding.EncodeToString(data),
			}
			return withClient(cfg, func(client *api.Client) error {
				file, err := client.UploadFile(cmd.Context(), projectID, req)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(file)
				}
				return writePlain("%d\t%s (v%d)\n", file.ID, file.Filename, file.Version)
			})
		},
	}
	cmd.Flags().StringVar(&fileType, "type", "document", "file type label")
	return cmd
}

func newFileListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("project id is required")
			}
			projectID, err := parseIDArg(args[0], "project id")
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				files, err := client.ListFiles(cmd.Context(), projectID)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(files)
				}
				for _, file := range files {
					if err := writePlain("%d\t%s (v%d)\n", file.ID, file.Filename, file.Version); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newFileDownloadCmd(cfg *config.Config) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a file's content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("file id is required")
			}
			id, err := parseIDArg(args[0], "file id")
			if err != nil {
				return err
			}

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return withClient(cfg, func(client *api.Client) error {
				_, err := client.DownloadFile(cmd.Context(), id, out)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write content to a file instead of stdout")
	return cmd
}

func newFileDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file-id>",
		Short: "Delete a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("file id is required")
			}
			id, err := parseIDArg(args[0], "file id")
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				return client.DeleteFile(cmd.Context(), id)
			})
		},
	}
}
