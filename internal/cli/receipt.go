package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guicheweb/recibo/internal/application/service"
	"github.com/guicheweb/recibo/internal/ptbr"
	"github.com/guicheweb/recibo/internal/storage"
)

func newRenderCommand(a *app) *cobra.Command {
	var input, format, output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a receipt to PDF, XLSX or text",
		Long: `Render a receipt to PDF, XLSX or text.

Without --output, text goes to stdout and binary formats are written to
the current directory as recibo-<modo>-<nome>.<ext>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := service.ParseFormat(format)
			if err != nil {
				return err
			}
			receipt, err := readReceipt(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}

			data, err := c.Services().Receipt.Render(cmd.Context(), receipt, f)
			if err != nil {
				return err
			}

			if output == "" && f == service.FormatText {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = storage.ReceiptFileName(receipt.Info.FullName, receipt.Mode.String(), fileTypeOf(f))
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "receipt file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf, xlsx or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a receipt and save it under the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := service.ParseFormat(format)
			if err != nil {
				return err
			}
			receipt, err := readReceipt(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}

			result, err := c.Services().Receipt.Export(cmd.Context(), receipt, f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.FilePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", ptbr.FormatBRL(result.Total))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "receipt file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf, xlsx or text")
	return cmd
}

func newTotalCommand(a *app) *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the line breakdown and the total of a receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := readReceipt(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := c.Services().Receipt.Total(cmd.Context(), receipt)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			out := cmd.OutOrStdout()
			for _, line := range summary.Lines {
				fmt.Fprintf(out, "%-28s %4d x %14s = %14s\n",
					line.Label, line.Quantity, ptbr.FormatBRL(line.UnitValue), ptbr.FormatBRL(line.Subtotal))
			}
			words, err := ptbr.AmountToWords(summary.Total)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "TOTAL: %s (%s)\n", ptbr.FormatBRL(summary.Total), words)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "receipt file (YAML or JSON, - for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	return cmd
}

func newPreviewCommand(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the composed receipt as JSON, placeholders included",
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := readReceipt(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}

			doc, err := c.Services().Receipt.Preview(cmd.Context(), receipt)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "receipt file (YAML or JSON, - for stdin)")
	return cmd
}

func fileTypeOf(f service.Format) storage.FileType {
	switch f {
	case service.FormatPDF:
		return storage.FileTypePDF
	case service.FormatXLSX:
		return storage.FileTypeExcel
	}
	return storage.FileTypeText
}
