package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/cardwall/wallpaper"
)

var (
	backgroundPath string
	requestPath    string
	outputPath     string
	positionName   string
	cardWidth      int
	cardOpacity    float64
	darkMode       bool
	blurBackground bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Composite cards onto a background image and write a wallpaper PNG",
	Long: `Render loads a background photograph, composites the cards from the
request file onto it, and writes the result as PNG.

Without --out the PNG is saved under the application-data wallpaper
directory with a fixed filename, ready to be handed to the OS wallpaper
facility.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := wallpaper.DefaultOptions()

		outputDir := ""
		if configPath != "" {
			dir, err := loadConfig(configPath, &opts)
			if err != nil {
				return err
			}
			outputDir = dir
		}

		if requestPath != "" {
			data, err := os.ReadFile(requestPath) //nolint:gosec // path is user-provided intentionally
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			if err := json.Unmarshal(data, &opts); err != nil {
				return fmt.Errorf("parse request %s: %w", requestPath, err)
			}
		}

		// Explicit flags override both config and request values.
		if cmd.Flags().Changed("position") {
			anchor, err := wallpaper.ParseAnchor(positionName)
			if err != nil {
				return err
			}
			opts.Anchor = anchor
		}
		if cmd.Flags().Changed("card-width") {
			opts.CardWidth = cardWidth
		}
		if cmd.Flags().Changed("opacity") {
			opts.CardOpacity = cardOpacity
		}
		if cmd.Flags().Changed("dark") {
			opts.DarkMode = darkMode
		}
		if cmd.Flags().Changed("blur") {
			opts.BlurBackground = blurBackground
		}

		if !wallpaper.IsValidImage(backgroundPath) {
			return fmt.Errorf("unsupported background image: %s", backgroundPath)
		}

		png, err := wallpaper.RenderWallpaper(backgroundPath, opts)
		if err != nil {
			return err
		}

		if outputPath != "" {
			if err := os.WriteFile(outputPath, png, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			slog.Info("wallpaper written", "path", outputPath, "bytes", len(png))
			return nil
		}

		store, err := wallpaper.NewStore(outputDir)
		if err != nil {
			return err
		}
		path, err := store.Save(png)
		if err != nil {
			return err
		}
		slog.Info("wallpaper saved", "path", path, "bytes", len(png))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&backgroundPath, "background", "b", "", "Background image (png/jpg/jpeg/bmp/gif/webp)")
	renderCmd.Flags().StringVarP(&requestPath, "request", "r", "", "JSON render request with cards and layout options")
	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output PNG path (default: application wallpaper store)")
	renderCmd.Flags().StringVar(&positionName, "position", "bottomright", "Card anchor: bottomright, bottomleft, topright, topleft")
	renderCmd.Flags().IntVar(&cardWidth, "card-width", 280, "Card width in pixels")
	renderCmd.Flags().Float64Var(&cardOpacity, "opacity", 0.85, "Card fill opacity in [0,1]")
	renderCmd.Flags().BoolVar(&darkMode, "dark", true, "Use the dark-mode card palette")
	renderCmd.Flags().BoolVar(&blurBackground, "blur", false, "Blur the background before compositing")
	_ = renderCmd.MarkFlagRequired("background")

	rootCmd.AddCommand(renderCmd)
}
