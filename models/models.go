// Package models defines the JSON-serialized job structures read by the
// vecmath console tool.
//
// A job names a set of vectors and a list of operations to evaluate against
// them, e.g.
//
//	{
//	  "ROUND": false,
//	  "VECTORS": {"v": [1, 2, 3], "w": [4, 5, 6]},
//	  "OPS": [{"OP": "dot", "A": "v", "B": "w"}]
//	}
package models

import "fmt"

// OPCODE identifies a vector operation in a job file.
type OPCODE string

const (
	STR        OPCODE = "str"
	LEN        OPCODE = "len"
	MAGNITUDE  OPCODE = "magnitude"
	NORMALIZED OPCODE = "normalized"
	DOT        OPCODE = "dot"
	MUL        OPCODE = "mul"
	SCALE      OPCODE = "scale"
	SUB        OPCODE = "sub"
	ADD        OPCODE = "add"
	ANGLE      OPCODE = "angle"
	EQ         OPCODE = "eq"
	NE         OPCODE = "ne"
	LT         OPCODE = "lt"
	LE         OPCODE = "le"
	GT         OPCODE = "gt"
	GE         OPCODE = "ge"
	GET        OPCODE = "get"
	SET        OPCODE = "set"
	ROTATE     OPCODE = "rotate"
	COPY       OPCODE = "copy"
)

// Binary reports whether the operation needs a second vector operand (B).
func (o OPCODE) Binary() bool {
	switch o {
	case DOT, SUB, ADD, ANGLE, EQ, NE, LT, LE, GT, GE:
		return true
	}
	return false
}

// JOB is the top-level job file.
type JOB struct {
	DEBUG   bool                 `json:"DEBUG"`
	ROUND   bool                 `json:"ROUND"`
	VECTORS map[string][]float64 `json:"VECTORS"`
	OPS     []*OP                `json:"OPS"`
}

// OP is a single operation.
//
// A and B name vectors in JOB.VECTORS. K is the scalar for scale/mul or the
// angle in degrees for rotate. I is the index for get/set. AXIS is "x", "y"
// or "z" for 3D rotation. AS, when set, stores a vector result back into the
// job under that name so later operations can use it.
type OP struct {
	OP   OPCODE   `json:"OP"`
	A    string   `json:"A"`
	B    string   `json:"B,omitempty"`
	K    *float64 `json:"K,omitempty"`
	I    int      `json:"I,omitempty"`
	AXIS string   `json:"AXIS,omitempty"`
	AS   string   `json:"AS,omitempty"`
}

// String implements fmt.Stringer.
func (o *OP) String() string {
	s := fmt.Sprintf("%s(%s", o.OP, o.A)
	if o.B != "" {
		s += ", " + o.B
	}
	if o.K != nil {
		s += fmt.Sprintf(", %g", *o.K)
	}
	if o.OP == GET || o.OP == SET {
		s += fmt.Sprintf(", [%d]", o.I)
	}
	if o.AXIS != "" {
		s += ", " + o.AXIS
	}
	s += ")"
	if o.AS != "" {
		s += " -> " + o.AS
	}
	return s
}

// Validate checks that the operands an operation needs are present.
func (o *OP) Validate() error {
	if o.OP == "" {
		return fmt.Errorf("missing OP")
	}
	if o.A == "" {
		return fmt.Errorf("%s: missing A", o.OP)
	}
	if o.OP.Binary() && o.B == "" {
		return fmt.Errorf("%s: missing B", o.OP)
	}
	switch o.OP {
	case SCALE, SET, ROTATE:
		if o.K == nil {
			return fmt.Errorf("%s: missing K", o.OP)
		}
	case MUL:
		if o.B == "" && o.K == nil {
			return fmt.Errorf("mul: need B or K")
		}
	}
	return nil
}
