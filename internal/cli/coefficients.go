package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hassy0430/K2/pkg/crypto/fsra"
)

// CoefficientSet is the JSON shape of one derived coefficient vector.
type CoefficientSet struct {
	Name         string   `json:"name"`
	Polynomial   string   `json:"polynomial"`
	Exponents    []int    `json:"exponents"`
	Coefficients []string `json:"coefficients"`
}

func NewCoefficientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coefficients",
		Short: "Show the derived alpha-table coefficients",
		Long: `Derive and print the four coefficient bytes of each alpha
parameter set. Coefficient j is the generator raised to exponent j,
computed in GF(2^8) modulo the set's reduction polynomial, and fills
byte lane j of the table entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			sets := make([]CoefficientSet, len(fsra.AlphaParams))
			for i, params := range fsra.AlphaParams {
				coef := fsra.DeriveCoefficients(params.Exponents, params.Poly)
				set := CoefficientSet{
					Name:         params.Name,
					Polynomial:   fmt.Sprintf("0x%03X", params.Poly),
					Exponents:    params.Exponents[:],
					Coefficients: make([]string, len(coef)),
				}
				for j, c := range coef {
					set.Coefficients[j] = fmt.Sprintf("%02X", c)
				}
				sets[i] = set
			}

			if outputJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(sets)
			}

			outputCoefficientsText(sets)
			return nil
		},
	}

	return cmd
}

func outputCoefficientsText(sets []CoefficientSet) {
	yellow := color.New(color.FgYellow, color.Bold)

	for _, set := range sets {
		yellow.Printf("%s (poly %s)\n", set.Name, set.Polynomial)
		for j, c := range set.Coefficients {
			fmt.Printf("  base^%-3d = %s\n", set.Exponents[j], c)
		}
		fmt.Println()
	}
}
