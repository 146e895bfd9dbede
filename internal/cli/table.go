package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hassy0430/K2/pkg/crypto/fsra"
)

// TableDump is the JSON shape of a full table dump.
type TableDump struct {
	Name         string   `json:"name"`
	Polynomial   string   `json:"polynomial"`
	Coefficients []string `json:"coefficients"`
	Entries      []string `json:"entries"`
}

func NewTableCommand() *cobra.Command {
	var tableName string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump an alpha lookup table",
		Long: `Build one of the four alpha substitution tables and dump its
256 entries in index order. FSR-A itself consumes alpha0; the other
parameter sets are provided for inspection.`,
		Example: `  # Dump the FSR-A table
  k2fsr table

  # Dump alpha2 as JSON
  k2fsr table --table alpha2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			params, err := tableParamsByName(tableName)
			if err != nil {
				return err
			}

			coef := fsra.DeriveCoefficients(params.Exponents, params.Poly)
			table := fsra.BuildTable(coef, params.Poly)

			if outputJSON {
				dump := TableDump{
					Name:         params.Name,
					Polynomial:   fmt.Sprintf("0x%03X", params.Poly),
					Coefficients: make([]string, len(coef)),
					Entries:      make([]string, len(table)),
				}
				for i, c := range coef {
					dump.Coefficients[i] = fmt.Sprintf("%02X", c)
				}
				for i, w := range table {
					dump.Entries[i] = fmt.Sprintf("%08X", w)
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(dump)
			}

			outputTableText(params, table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tableName, "table", "t", "alpha0", "Table to dump (alpha0, alpha1, alpha2, alpha3)")

	return cmd
}

func outputTableText(params fsra.TableParams, table *fsra.Table) {
	yellow := color.New(color.FgYellow, color.Bold)

	yellow.Printf("%s[%d] = {\n", params.Name, len(table))

	perRow := wordsPerRow()
	for i, w := range table {
		fmt.Printf("0x%08X", w)
		if i < len(table)-1 {
			fmt.Print(",")
		}
		if (i+1)%perRow == 0 || i == len(table)-1 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}

	yellow.Println("}")
}
