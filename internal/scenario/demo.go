package scenario

import (
	"github.com/zeusync/gmath/pkg/vector"
)

// Demo walks through every vector operation on two planar points, including
// the exact equality boundary near 0.5.
func Demo() Scenario {
	p1 := vector.New2(1.0, 0.5)
	p2 := vector.New2(2.4, 3.9)
	p3 := vector.New2(1.0, 0.5-1.0e-16)
	p4 := vector.New2(1.0, 0.5-1.0e-17)

	want := func(v Value) *Value { return &v }

	return Scenario{
		Name: "demo",
		Cases: []Case{
			{Name: "add", Op: "add", A: p1, B: p2, Want: want(VectorValue(vector.New(3.4, 4.4, 0)))},
			{Name: "sub", Op: "sub", A: p1, B: p2, Want: want(VectorValue(vector.New(-1.4, -3.4, 0)))},
			{Name: "cross", Op: "cross", A: p1, B: p2, Want: want(VectorValue(vector.New(0, 0, 2.7)))},
			{Name: "cross", Op: "cross", A: p2, B: p1, Want: want(VectorValue(vector.New(0, 0, -2.7)))},
			{Name: "dot", Op: "dot", A: p1, B: p2, Want: want(ScalarValue(4.35))},
			{Name: "dot", Op: "dot", A: p2, B: p1, Want: want(ScalarValue(4.35))},
			{Name: "squared length", Op: "dot", A: p1, B: p1, Want: want(ScalarValue(1.25))},
			{Name: "right scalar", Op: "scale", A: p1, Scalar: 1.5, Want: want(VectorValue(vector.New(1.5, 0.75, 0)))},
			{Name: "right scalar (repeated)", Op: "scale", A: p1.Scale(1.5), Scalar: 1.1, Want: want(VectorValue(vector.New(1.6500000000000001, 0.8250000000000001, 0)))},
			{Name: "left scalar", Op: "lscale", A: p1, Scalar: 1.5, Want: want(VectorValue(vector.New(1.5, 0.75, 0)))},
			{Name: "left scalar plus vector", Op: "scale_add", A: p1, B: p2, Scalar: 1.5, Want: want(VectorValue(vector.New(3.9, 4.65, 0)))},
			{Name: "compare", Op: "equal", A: p1, B: p2, Want: want(BoolValue(false))},
			{Name: "compare", Op: "not_equal", A: p1, B: p2, Want: want(BoolValue(true))},
			{Name: "compare", Op: "equal", A: p1, B: p1, Want: want(BoolValue(true))},
			{Name: "compare (1e-16)", Op: "equal", A: p1, B: p3, Want: want(BoolValue(false))},
			{Name: "compare (1e-17)", Op: "equal", A: p1, B: p4, Want: want(BoolValue(true))},
		},
	}
}
