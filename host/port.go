package host

// Input is a module input port. A disconnected input reads 0.
type Input struct {
	Value  float64
	Active bool
}

// Set connects the input and stores v.
func (in *Input) Set(v float64) {
	in.Value = v
	in.Active = true
}

// Disconnect marks the input inactive and zeroes its value.
func (in *Input) Disconnect() {
	in.Value = 0
	in.Active = false
}

// Output is a module output port, written once per frame.
type Output struct {
	Value float64
}

// Unit groups the parameters and ports of one module instance.
type Unit struct {
	Params  []*Param
	Inputs  []Input
	Outputs []Output
}

// NewUnit builds a unit with one parameter per spec, in order, and the given
// number of input and output ports.
func NewUnit(specs []ParamSpec, numInputs, numOutputs int) (*Unit, error) {
	params := make([]*Param, len(specs))

	for i, spec := range specs {
		p, err := NewParam(spec)
		if err != nil {
			return nil, err
		}

		params[i] = p
	}

	return &Unit{
		Params:  params,
		Inputs:  make([]Input, numInputs),
		Outputs: make([]Output, numOutputs),
	}, nil
}

// Param returns the parameter with the given id.
func (u *Unit) Param(id int) *Param { return u.Params[id] }

// Input returns the input port with the given id.
func (u *Unit) Input(id int) *Input { return &u.Inputs[id] }

// Output returns the output port with the given id.
func (u *Unit) Output(id int) *Output { return &u.Outputs[id] }
