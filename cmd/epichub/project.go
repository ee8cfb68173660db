package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"epichub/internal/api"
	"epichub/internal/config"
)

func newProjectCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectCreateCmd(cfg, jsonOutput),
		newProjectListCmd(cfg, jsonOutput),
	)
	return cmd
}

func newProjectCreateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return withClient(cfg, func(client *api.Client) error {
				project, err := client.CreateProject(cmd.Context(), api.ProjectCreateRequest{
					Name: strings.Join(args, " "),
				})
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(project)
				}
				return writePlain("%d\t%s\n", project.ID, project.Name)
			})
		},
	}
}

func newProjectListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cfg, func(client *api.Client) error {
				projects, err := client.ListProjects(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(projects)
				}
				for _, project := range projects {
					if err := writePlain("%d\t%s\n", project.ID, project.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
