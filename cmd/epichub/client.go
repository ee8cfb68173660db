package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"epichub/internal/api"
	"epichub/internal/config"
)

func withClient(cfg *config.Config, fn func(*api.Client) error) error {
	if cfg == nil {
		return fmt.Errorf("config not initialized")
	}
	return fn(api.NewClient(cfg.BaseURL()))
}

func writeJSON(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

func writePlain(format string, args ...any) error {
	_, err := fmt.Fprintf(os.Stdout, format, args...)
	return err
}

func parseIDArg(raw, name string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
