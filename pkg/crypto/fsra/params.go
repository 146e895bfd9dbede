// Package fsra implements the FSR-A stage of the KCipher-2 stream
// cipher: derivation of the alpha-table coefficients over GF(2^8),
// construction of the 256-entry lookup tables, and the 5-word feedback
// shift register driven by the alpha_0 table.
package fsra

const (
	// TableSize is the number of entries in an alpha lookup table,
	// one per possible field element.
	TableSize = 256

	// Lanes is the number of coefficient byte lanes in a table entry.
	Lanes = 4

	// RegisterSize is the number of 32-bit words in FSR-A.
	RegisterSize = 5

	// DefaultSteps is the fixed number of register updates in a
	// simulation run.
	DefaultSteps = 64
)

// Reduction polynomials of the four KCipher-2 alpha tables. All are
// primitive of degree 8; bit 8 marks the degree-8 term.
const (
	BetaPoly  uint16 = 0x1C3 // x^8 + x^7 + x^6 + x + 1
	GammaPoly uint16 = 0x12D // x^8 + x^5 + x^3 + x^2 + 1
	DeltaPoly uint16 = 0x14D // x^8 + x^6 + x^3 + x^2 + 1
	ZetaPoly  uint16 = 0x165 // x^8 + x^6 + x^5 + x^2 + 1
)

// TableParams identifies one alpha table: the reduction polynomial and
// the generator exponents, one per byte lane in declaration order.
type TableParams struct {
	Name      string
	Poly      uint16
	Exponents [Lanes]int
}

// AlphaParams holds the parameter sets of the four alpha tables.
// FSR-A consumes only Alpha0; the others belong to FSR-B.
var AlphaParams = [4]TableParams{
	{Name: "alpha0", Poly: BetaPoly, Exponents: [Lanes]int{71, 12, 3, 24}},
	{Name: "alpha1", Poly: GammaPoly, Exponents: [Lanes]int{29, 93, 156, 230}},
	{Name: "alpha2", Poly: DeltaPoly, Exponents: [Lanes]int{248, 199, 16, 34}},
	{Name: "alpha3", Poly: ZetaPoly, Exponents: [Lanes]int{16, 56, 253, 157}},
}

// Alpha0 is the parameter set of the table that feeds FSR-A.
var Alpha0 = AlphaParams[0]

// InitialState is the fixed 5-word vector FSR-A starts from.
var InitialState = State{0xBE3CA984, 0x974E6719, 0x86916EFF, 0xF52DACF9, 0x960329B5}
