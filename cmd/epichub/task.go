package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"epichub/internal/api"
	"epichub/internal/config"
	"epichub/internal/models"
)

type taskFlags struct {
	description string
	status      string
	assignees   []string
	dueDate     string
	labels      []string
}

func bindTaskFlags(cmd *cobra.Command, flags *taskFlags) {
	cmd.Flags().StringVar(&flags.description, "description", "", "task description")
	cmd.Flags().StringVar(&flags.status, "status", "", "task status")
	cmd.Flags().StringSliceVar(&flags.assignees, "assignee", nil, "assignee (repeatable)")
	cmd.Flags().StringVar(&flags.dueDate, "due", "", "due date")
	cmd.Flags().StringSliceVar(&flags.labels, "label", nil, "label (repeatable)")
}

func newTaskCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskCreateCmd(cfg, jsonOutput),
		newTaskListCmd(cfg, jsonOutput),
		newTaskUpdateCmd(cfg, jsonOutput),
		newTaskDeleteCmd(cfg),
	)
	return cmd
}

func newTaskCreateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	flags := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "create <project-id> <title>",
		Short: "Create a task under a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("project id and title are required")
			}
			projectID, err := parseIDArg(args[0], "project id")
			if err != nil {
				return err
			}

			req := api.TaskCreateRequest{Title: strings.Join(args[1:], " ")}
			if cmd.Flags().Changed("description") {
				req.Description = &flags.description
			}
			if cmd.Flags().Changed("status") {
				req.Status = &flags.status
			}
			if cmd.Flags().Changed("assignee") {
				req.Assignees = flags.assignees
			}
			if cmd.Flags().Changed("due") {
				req.DueDate = &flags.dueDate
			}
			if cmd.Flags().Changed("label") {
				req.Labels = flags.labels
			}

			return withClient(cfg, func(client *api.Client) error {
				task, err := client.CreateTask(cmd.Context(), projectID, req)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(task)
				}
				return writePlain("%d\t%s\n", task.ID, task.Title)
			})
		},
	}
	bindTaskFlags(cmd, flags)
	return cmd
}

func newTaskListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("project id is required")
			}
			projectID, err := parseIDArg(args[0], "project id")
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				tasks, err := client.ListTasks(cmd.Context(), projectID)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(tasks)
				}
				for _, task := range tasks {
					if err := writePlain("%s\n", formatTaskLine(task)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newTaskUpdateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	flags := &taskFlags{}
	var title string
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update fields of a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task id is required")
			}
			id, err := parseIDArg(args[0], "task id")
			if err != nil {
				return err
			}

			var req api.TaskUpdateRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &flags.description
			}
			if cmd.Flags().Changed("status") {
				req.Status = &flags.status
			}
			if cmd.Flags().Changed("assignee") {
				req.Assignees = flags.assignees
			}
			if cmd.Flags().Changed("due") {
				req.DueDate = &flags.dueDate
			}
			if cmd.Flags().Changed("label") {
				req.Labels = flags.labels
			}

			return withClient(cfg, func(client *api.Client) error {
				task, err := client.UpdateTask(cmd.Context(), id, req)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(task)
				}
				return writePlain("%s\n", formatTaskLine(task))
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title")
	bindTaskFlags(cmd, flags)
	return cmd
}

func newTaskDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task id is required")
			}
			id, err := parseIDArg(args[0], "task id")
			if err != nil {
				return err
			}
			return withClient(cfg, func(client *api.Client) error {
				return client.DeleteTask(cmd.Context(), id)
			})
		},
	}
}

func formatTaskLine(task models.Task) string {
	var line strings.Builder
	fmt.Fprintf(&line, "%d\t[%s] %s", task.ID, task.Status, task.Title)
	if len(task.Assignees) > 0 {
		line.WriteString(" @" + strings.Join(task.Assignees, ",@"))
	}
	if task.DueDate != nil {
		line.WriteString(" due:" + *task.DueDate)
	}
	return line.String()
}
