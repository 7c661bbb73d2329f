package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

func newHistoryCmd() *cobra.Command {
	var (
		assetID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated documents",
		Long:  "Lists the stored document history, newest first, optionally filtered by asset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, assetID, limit)
		},
	}

	cmd.Flags().StringVarP(&assetID, "asset", "a", "", "Filter by asset id")
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of documents to display")

	return cmd
}

func runHistory(cmd *cobra.Command, assetID string, limit int) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		var docs []entities.Document
		if assetID != "" {
			docs = deps.HistoryHandler.ForAsset(assetID)
		} else {
			docs = deps.HistoryHandler.List()
		}

		if len(docs) == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		total := len(docs)
		if limit > 0 && len(docs) > limit {
			docs = docs[:limit]
		}

		fmt.Printf("Showing %d of %d documents:\n\n", len(docs), total)
		for _, doc := range docs {
			displayDocument(doc)
		}
		return nil
	})
}

func displayDocument(doc entities.Document) {
	fmt.Printf("ID: %s\n", doc.ID)
	fmt.Printf("  [%s] %s\n", doc.Type, doc.Title)
	fmt.Printf("  Created: %s\n", doc.CreatedAt.Format("2006-01-02 15:04"))
	if doc.AssetID != "" {
		fmt.Printf("  Asset: %s\n", doc.AssetID)
	}
	fmt.Println()
}
