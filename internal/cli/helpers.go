package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/guicheweb/recibo/internal/cpf"
	"github.com/guicheweb/recibo/internal/locations"
	"github.com/guicheweb/recibo/internal/ptbr"
	"github.com/guicheweb/recibo/pkg/utils"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "words <valor>",
		Short:   "Spell an amount out in Portuguese",
		Example: "  recibo words 1.234,56\n  recibo words 501",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := utils.ParseAmount(args[0])
			if err != nil {
				return err
			}
			words, err := ptbr.AmountToWords(amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", ptbr.FormatBRL(amount), words)
			return nil
		},
	}
}

func newCPFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpf",
		Short: "Mask or validate a CPF",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "mask <cpf>",
			Short: "Format the digits as 000.000.000-00",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), cpf.Mask(args[0]))
			},
		},
		&cobra.Command{
			Use:   "validate <cpf>",
			Short: "Check the CPF check digits",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				masked := cpf.Mask(args[0])
				if !cpf.IsValid(args[0]) {
					return fmt.Errorf("CPF inválido: %s", masked)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "CPF válido: %s\n", masked)
				return nil
			},
		},
	)
	return cmd
}

func newStatesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the federative units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range c.Directory().States() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s.Code, s.Name)
			}
			return nil
		},
	}
}

func newCitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities <UF>",
		Short: "List the cities of a federative unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := locations.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			c, err := a.start(cmd.Context())
			if err != nil {
				return err
			}
			for _, city := range c.Directory().Cities(cmd.Context(), state.Code) {
				fmt.Fprintln(cmd.OutOrStdout(), city)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "recibo %s (%s)\n", Version, runtime.Version())
		},
	}
}
