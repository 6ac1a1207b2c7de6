package ani

// Number is the set of types the arithmetic combinators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add is a + b at every instant.
func Add[N Number](a, b Ani[N]) Ani[N] {
	return Combine2(a, b, func(x, y N) N { return x + y })
}

// Sub is a - b at every instant.
func Sub[N Number](a, b Ani[N]) Ani[N] {
	return Combine2(a, b, func(x, y N) N { return x - y })
}

// Mul is a * b at every instant.
func Mul[N Number](a, b Ani[N]) Ani[N] {
	return Combine2(a, b, func(x, y N) N { return x * y })
}

// Div is a / b at every instant. Integer division by zero panics, as it
// would outside an animation.
func Div[N Number](a, b Ani[N]) Ani[N] {
	return Combine2(a, b, func(x, y N) N { return x / y })
}

// Neg is -a at every instant.
func Neg[N Number](a Ani[N]) Ani[N] {
	return Select(a, func(x N) N { return -x })
}

// Scale multiplies a by the fixed factor k.
func Scale[N Number](a Ani[N], k N) Ani[N] {
	return Select(a, func(x N) N { return x * k })
}

// Lerp interpolates between from and to by progress p, where 0 gives from
// and 1 gives to.
func Lerp(from, to, p Ani[float64]) Ani[float64] {
	return Combine3(from, to, p, func(a, b, p float64) float64 {
		return a + (b-a)*p
	})
}
