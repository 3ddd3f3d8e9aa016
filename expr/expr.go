package expr

// Node is implemented by every expression node kind.
type Node interface {
	node()
}

// Variable references a scalar value by name.
type Variable struct {
	Name string
}

func (Variable) node() {}

// Int is an exact integer literal.
type Int int64

func (Int) node() {}

// Rational is an exact rational literal. Either component may carry
// the sign; consuming passes normalize it.
type Rational struct {
	Num int64
	Den int64
}

func (Rational) node() {}

// Float is a real double-precision literal.
type Float float64

func (Float) node() {}

// Complex literal widths, in bytes.
const (
	WidthAbstract   uint8 = 0  // width not yet pinned
	WidthComplex64  uint8 = 8  // two 32-bit floats
	WidthComplex128 uint8 = 16 // two 64-bit floats
)

// Complex is a complex literal. Width 0 means the literal is abstract:
// its storage width has not been pinned yet. The complex-constant sizing
// pass pins every complex literal in a batch to one width.
type Complex struct {
	Value complex128
	Width uint8
}

func (Complex) node() {}

// Call applies a named function to ordered arguments.
type Call struct {
	Name string
	Args []Node
}

func (Call) node() {}

// Sum is an n-ary addition. Term order is significant for output
// determinism and is only changed by the sign-grouping pass.
type Sum struct {
	Terms []Node
}

func (Sum) node() {}

// Product is an n-ary multiplication.
type Product struct {
	Factors []Node
}

func (Product) node() {}

// Power raises Base to Exponent.
type Power struct {
	Base     Node
	Exponent Node
}

func (Power) node() {}

// Quotient divides Numer by Denom.
type Quotient struct {
	Numer Node
	Denom Node
}

func (Quotient) node() {}

// Lookup accesses a named field of a record-valued expression, such as
// one order of a paired special-function evaluation.
type Lookup struct {
	Base  Node
	Field string
}

func (Lookup) node() {}

// Subscript is an indexed access into a vector-valued name. It is the
// result form of the vector-component pass.
type Subscript struct {
	Base  Node
	Index Node
}

func (Subscript) node() {}

// CommonSub marks its child as a reusable common subexpression. Prefix
// is a human-readable tag used to derive the hoisted temporary's name;
// it may be empty.
type CommonSub struct {
	Child  Node
	Prefix string
}

func (CommonSub) node() {}

// Derivative is the Count-th symbolic derivative of Child with respect
// to its argument, evaluated at Args. Only Hankel/Bessel-family calls
// are ever expanded; other targets pass through the pipeline untouched.
type Derivative struct {
	Child Call
	Count int
	Args  []Node
}

func (Derivative) node() {}
