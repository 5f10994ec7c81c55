package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vastuhome/layoutengine/internal/project"
)

// newPresetsCmd creates the presets command group for managing named
// constraint presets.
func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage named constraint presets",
	}
	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsSaveCmd())
	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := project.DefaultPresetsPath()
			if err != nil {
				return err
			}
			presets, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no presets stored")
				return nil
			}
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s walkway=%.2fm coverage=%.0f%% categories=%d\n",
					p.Name, p.Clearance.WalkwayWidth, p.Clearance.WalkwayCoverage*100, len(p.Clearance.Categories))
			}
			return nil
		},
	}
}

func newPresetsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <preset.json>",
		Short: "Store a preset from a JSON file, replacing any with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var preset project.Preset
			if err := json.Unmarshal(data, &preset); err != nil {
				return fmt.Errorf("parse preset %s: %w", args[0], err)
			}
			if preset.Name == "" {
				return fmt.Errorf("preset has no name")
			}

			path, err := project.DefaultPresetsPath()
			if err != nil {
				return err
			}
			presets, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			replaced := false
			for i := range presets {
				if presets[i].Name == preset.Name {
					presets[i] = preset
					replaced = true
					break
				}
			}
			if !replaced {
				presets = append(presets, preset)
			}
			if err := project.SavePresets(path, presets); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("preset saved", "name", preset.Name, "path", path)
			return nil
		},
	}
}
