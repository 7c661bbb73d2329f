package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/sop-core/internal/domain/entities"
)

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage the asset registry",
	}

	cmd.AddCommand(newAssetsListCmd(), newAssetsAddCmd())
	return cmd
}

func newAssetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				assets := deps.AssetHandler.List()
				if len(assets) == 0 {
					fmt.Println("No assets registered.")
					return nil
				}
				fmt.Printf("Showing %d assets:\n\n", len(assets))
				for _, a := range assets {
					displayAsset(a)
				}
				return nil
			})
		},
	}
}

func newAssetsAddCmd() *cobra.Command {
	var (
		name  string
		brand string
		model string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset to the registry",
		Long:  "Adds an asset for the current session. The registry is not persisted; use the printed id within this run or pick a seed asset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				asset, err := deps.AssetHandler.Add(name, brand, model)
				if err != nil {
					return err
				}
				fmt.Println("Added asset:")
				displayAsset(asset)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Asset name (required)")
	cmd.Flags().StringVarP(&brand, "brand", "b", "", "Asset brand")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Asset model")

	return cmd
}

func displayAsset(a entities.Asset) {
	fmt.Printf("ID: %s\n", a.ID)
	fmt.Printf("  %s", a.Name)
	if a.Brand != "" || a.Model != "" {
		fmt.Printf(" (%s %s)", a.Brand, a.Model)
	}
	fmt.Println()
	fmt.Println()
}
