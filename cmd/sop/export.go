package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/sop-core/internal/application/handlers"
	"github.com/ersonp/sop-core/internal/domain/entities"
)

type exportFlags struct {
	format  string
	output  string
	assetID string
	docID   string
}

type exporter struct {
	history *handlers.HistoryHandler
	format  string
	output  string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export documents to file",
		Long:  "Exports stored documents to markdown or JSON format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "markdown", "Output format (markdown, json)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.assetID, "asset", "a", "", "Export only documents for this asset id")
	cmd.Flags().StringVarP(&flags.docID, "id", "i", "", "Export a single document by id")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(cmd.Context(), func(deps *Deps) error {
		e := &exporter{
			history: deps.HistoryHandler,
			format:  flags.format,
			output:  flags.output,
		}

		docs, err := e.fetchDocuments(flags.docID, flags.assetID)
		if err != nil {
			return err
		}

		return e.export(docs)
	})
}

func (e *exporter) fetchDocuments(docID, assetID string) ([]entities.Document, error) {
	switch {
	case docID != "":
		doc, ok := e.history.Find(docID)
		if !ok {
			return nil, fmt.Errorf("document not found: %s", docID)
		}
		return []entities.Document{doc}, nil
	case assetID != "":
		docs := e.history.ForAsset(assetID)
		if len(docs) == 0 {
			return nil, fmt.Errorf("no documents found for asset %s", assetID)
		}
		return docs, nil
	default:
		docs := e.history.List()
		if len(docs) == 0 {
			return nil, fmt.Errorf("no documents found to export")
		}
		return docs, nil
	}
}

func (e *exporter) export(docs []entities.Document) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatDocuments(w, docs); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d documents to %s\n", len(docs), e.output)
	}

	return nil
}

func (e *exporter) formatDocuments(w io.Writer, docs []entities.Document) error {
	switch e.format {
	case "json":
		return formatJSON(w, docs)
	case "markdown":
		return formatMarkdown(w, docs)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, docs []entities.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(docs)
}

// formatMarkdown writes each document's content verbatim; the content
// already carries its own heading structure.
func formatMarkdown(w io.Writer, docs []entities.Document) error {
	for i, doc := range docs {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n\n---\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, doc.Content); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
