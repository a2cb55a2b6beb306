package colour

// Named full-intensity colors. These are functions rather than
// variables because the component type is generic.

// White is full intensity on all three channels.
func White[S Standard, T Component]() RGB[S, T] {
	one := fromFloat[T](1)
	return RGB[S, T]{R: one, G: one, B: one}
}

// Black is the zero color.
func Black[S Standard, T Component]() RGB[S, T] {
	return RGB[S, T]{}
}

// Red is full intensity on the red channel only.
func Red[S Standard, T Component]() RGB[S, T] {
	return RGB[S, T]{R: fromFloat[T](1)}
}

// Green is full intensity on the green channel only.
func Green[S Standard, T Component]() RGB[S, T] {
	return RGB[S, T]{G: fromFloat[T](1)}
}

// Blue is full intensity on the blue channel only.
func Blue[S Standard, T Component]() RGB[S, T] {
	return RGB[S, T]{B: fromFloat[T](1)}
}
