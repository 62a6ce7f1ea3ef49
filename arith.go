package geom2

// Element-wise arithmetic. Each binary operator comes as a value method,
// an in-place method on the receiver, a scalar broadcast function and an
// in-place scalar broadcast function.

// Add returns (a.X+b.X, a.Y+b.Y).
func (a Vec2[T, U]) Add(b Vec2[T, U]) Vec2[T, U] {
	return Vec2[T, U]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns (a.X-b.X, a.Y-b.Y).
func (a Vec2[T, U]) Sub(b Vec2[T, U]) Vec2[T, U] {
	return Vec2[T, U]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Mul returns the component-wise product.
func (a Vec2[T, U]) Mul(b Vec2[T, U]) Vec2[T, U] {
	return Vec2[T, U]{X: a.X * b.X, Y: a.Y * b.Y}
}

// Div returns the component-wise quotient. An integer axis divided by
// zero panics like the scalar division does.
func (a Vec2[T, U]) Div(b Vec2[T, U]) Vec2[T, U] {
	return Vec2[T, U]{X: a.X / b.X, Y: a.Y / b.Y}
}

// Neg returns (-a.X, -a.Y).
func (a Vec2[T, U]) Neg() Vec2[T, U] {
	return Vec2[T, U]{X: -a.X, Y: -a.Y}
}

func (a *Vec2[T, U]) AddAssign(b Vec2[T, U]) {
	a.X += b.X
	a.Y += b.Y
}

func (a *Vec2[T, U]) SubAssign(b Vec2[T, U]) {
	a.X -= b.X
	a.Y -= b.Y
}

func (a *Vec2[T, U]) MulAssign(b Vec2[T, U]) {
	a.X *= b.X
	a.Y *= b.Y
}

func (a *Vec2[T, U]) DivAssign(b Vec2[T, U]) {
	a.X /= b.X
	a.Y /= b.Y
}

// Rem returns the component-wise remainder, with the sign of the dividend.
func Rem[T, U Integer](a, b Vec2[T, U]) Vec2[T, U] {
	return Vec2[T, U]{X: a.X % b.X, Y: a.Y % b.Y}
}

func RemAssign[T, U Integer](a *Vec2[T, U], b Vec2[T, U]) {
	a.X %= b.X
	a.Y %= b.Y
}

// AddScalar returns (a.X+n, a.Y+n).
func AddScalar[T Number](a Sq[T], n T) Sq[T] {
	return Sq[T]{X: a.X + n, Y: a.Y + n}
}

// SubScalar returns (a.X-n, a.Y-n).
func SubScalar[T Number](a Sq[T], n T) Sq[T] {
	return Sq[T]{X: a.X - n, Y: a.Y - n}
}

// MulScalar scales both components by n.
func MulScalar[T Number](a Sq[T], n T) Sq[T] {
	return Sq[T]{X: a.X * n, Y: a.Y * n}
}

// DivScalar divides both components by n.
func DivScalar[T Number](a Sq[T], n T) Sq[T] {
	return Sq[T]{X: a.X / n, Y: a.Y / n}
}

// RemScalar returns (a.X%n, a.Y%n).
func RemScalar[T Integer](a Sq[T], n T) Sq[T] {
	return Sq[T]{X: a.X % n, Y: a.Y % n}
}

func AddScalarAssign[T Number](a *Sq[T], n T) {
	a.X += n
	a.Y += n
}

func SubScalarAssign[T Number](a *Sq[T], n T) {
	a.X -= n
	a.Y -= n
}

func MulScalarAssign[T Number](a *Sq[T], n T) {
	a.X *= n
	a.Y *= n
}

func DivScalarAssign[T Number](a *Sq[T], n T) {
	a.X /= n
	a.Y /= n
}

func RemScalarAssign[T Integer](a *Sq[T], n T) {
	a.X %= n
	a.Y %= n
}
