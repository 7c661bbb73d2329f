package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document-id>",
		Short: "Print a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, id string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		doc, ok := deps.HistoryHandler.Find(id)
		if !ok {
			return fmt.Errorf("document not found: %s", id)
		}
		fmt.Println(doc.Content)
		return nil
	})
}
