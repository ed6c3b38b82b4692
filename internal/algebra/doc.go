// Package algebra defines the algebraic capabilities that state and input
// representations must provide to be driven by the generic control machinery.
//
// The capabilities are expressed as generic interface constraints:
//
//   - [Group]: Zero, Opposite, Plus, Minus
//   - [Abelian]: a Group whose Plus is commutative
//   - [Field]: an Abelian group with One, Inverse and Multiply
//   - [Vector]: an Abelian group scaled by a field F
//   - [RealVector], [InnerProductSpace]: vectors over the reals
//
// The laws (associativity, commutativity, distributivity) cannot be expressed
// in Go's type system. They are preconditions on the concrete type and are
// never checked at run time. A type that claims to be Abelian while composing
// its operands in order-dependent fashion will silently produce wrong control
// output.
//
// Concrete types [Float], [Vec2], [Vec3] and [VecN] are provided for scalar,
// planar, spatial and arbitrary dimension quantities.
package algebra
