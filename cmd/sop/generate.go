package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/sop-core/internal/application/handlers"
	"github.com/ersonp/sop-core/internal/domain/entities"
)

type generateFlags struct {
	assetID     string
	name        string
	brand       string
	model       string
	description string
	specs       string
	docType     string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new procedure document",
		Long:  "Generates a Standard Operating Procedure for an asset and stores it in the history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.assetID, "asset", "a", "", "ID of an existing asset")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Create an asset with this name and generate for it")
	cmd.Flags().StringVar(&flags.brand, "brand", "", "Brand for the created asset")
	cmd.Flags().StringVar(&flags.model, "model", "", "Model for the created asset")
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Task description (required)")
	cmd.Flags().StringVarP(&flags.specs, "specs", "s", "", "Additional technical data")
	cmd.Flags().StringVarP(&flags.docType, "type", "t", string(entities.DocumentTypeStandard), "Document type (standard, technical_sheet, instruction)")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()

	return withGenerateHandler(ctx, func(gh *handlers.GenerateHandler, deps *Deps) error {
		var asset entities.Asset
		switch {
		case flags.assetID != "":
			found, ok := deps.AssetHandler.Find(flags.assetID)
			if !ok {
				return fmt.Errorf("unknown asset id %q (see 'sop assets list')", flags.assetID)
			}
			asset = found
		case flags.name != "":
			created, err := deps.AssetHandler.Add(flags.name, flags.brand, flags.model)
			if err != nil {
				return err
			}
			asset = created
		default:
			return errors.New("an asset is required (use --asset or --name)")
		}

		doc, err := gh.Handle(ctx, entities.GenerationRequest{
			AssetID:     asset.ID,
			Description: flags.description,
			Brand:       asset.Brand,
			Model:       asset.Model,
			Specs:       flags.specs,
			DocType:     entities.DocumentType(flags.docType),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Generated %q (%s)\n\n", doc.Title, doc.ID)
		fmt.Println(doc.Content)
		return nil
	})
}
