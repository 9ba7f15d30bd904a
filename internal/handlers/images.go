package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"branded_clothing_shop/internal/services"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (h *Handlers) ImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Зображення товарів",
	}
	cmd.AddCommand(h.imagesListCommand(), h.imagesExportCommand())
	return cmd
}

func (h *Handlers) imagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Файли в теці зображень і товари без фото",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.Images.EnsureDir(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			images := h.Images.AvailableImages()
			fmt.Fprintf(out, "Тека: %s (%d файлів)\n", h.Images.Dir(), len(images))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, name := range images {
				size := "?"
				if info, err := os.Stat(filepath.Join(h.Images.Dir(), name)); err == nil {
					size = humanize.Bytes(uint64(info.Size()))
				}
				fmt.Fprintf(w, "%s\t%s\n", name, size)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, p := range h.Catalog.AllProducts() {
				if h.Images.ProductImagePath(p) == "" {
					fmt.Fprintf(out, "Без фото: %d %s\n", p.ID, p.Name)
				}
			}
			return nil
		},
	}
}

func (h *Handlers) imagesExportCommand() *cobra.Command {
	var (
		out           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "export <productID>",
		Short: "Зберегти фото товару (або заглушку) у файл",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id товару")
			if err != nil {
				return err
			}
			p, err := h.Catalog.ProductByID(id)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("product-%d.png", p.ID)
			}
			if err := h.Images.Export(p, width, height, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Зображення збережено: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "файл (.png, .jpg, ...)")
	cmd.Flags().IntVar(&width, "width", services.DefaultImageWidth, "ширина")
	cmd.Flags().IntVar(&height, "height", services.DefaultImageHeight, "висота")
	return cmd
}
