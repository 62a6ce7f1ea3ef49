package geom2

import "golang.org/x/exp/constraints"

// Number is a constraint for the scalar types a Vec2 can hold.
// They all support + - * / and unary minus.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Integer axes additionally support %.
type Integer interface {
	constraints.Integer
}

// Real is a constraint for scalars that convert to float64.
type Real interface {
	constraints.Integer | constraints.Float
}

// Ordered scalars have a total order (with NaN handled by cmp.Compare).
type Ordered interface {
	Real
}

// SignedReal scalars have a sign.
type SignedReal interface {
	constraints.Signed | constraints.Float
}
