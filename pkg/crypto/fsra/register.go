package fsra

// State is the ordered 5-word register content.
type State [RegisterSize]uint32

// Reporter receives a register snapshot after each transition. Step 0
// is the initial state; steps 1..n follow each update.
type Reporter interface {
	Report(step int, state State)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(step int, state State)

func (f ReporterFunc) Report(step int, state State) { f(step, state) }

// Register is the FSR-A feedback shift register: five 32-bit words with
// a nonlinear, table-driven feedback path. The table is shared and never
// written; the register is the sole owner of its state.
type Register struct {
	state State
	table *Table
	steps int
}

// NewRegister returns a register holding the given initial state and
// feedback table.
func NewRegister(initial State, table *Table) *Register {
	return &Register{state: initial, table: table}
}

// State returns a copy of the current 5-word state.
func (r *Register) State() State {
	return r.state
}

// Steps returns the number of updates applied since the initial state.
func (r *Register) Steps() int {
	return r.steps
}

// Update applies one register transition. The feedback word is computed
// entirely from the pre-update state: the leading word shifted up a
// byte, XOR the table entry selected by that word's top byte, XOR word 3.
// The words then shift down one position and the feedback word becomes
// the new tail.
func (r *Register) Update() {
	fb := r.state[0]<<8 ^ r.table[r.state[0]>>24] ^ r.state[3]
	r.state[0] = r.state[1]
	r.state[1] = r.state[2]
	r.state[2] = r.state[3]
	r.state[3] = r.state[4]
	r.state[4] = fb
	r.steps++
}

// Run reports the current state, then applies Update the given number
// of times, reporting after each. A run of n steps produces n+1 reports.
func (r *Register) Run(steps int, rep Reporter) {
	rep.Report(r.steps, r.state)
	for i := 0; i < steps; i++ {
		r.Update()
		rep.Report(r.steps, r.state)
	}
}
