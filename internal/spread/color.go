package spread

import "github.com/Mearkatz/spreading-colors-ca/pkg/random"

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RandomColor draws three independent uniform channel values.
func RandomColor(rng *random.RNG) Color {
	return Color{R: rng.Byte(), G: rng.Byte(), B: rng.Byte()}
}

// ShiftChannel perturbs a single channel value. The magnitude is drawn
// uniformly from [0, max), then a fair coin picks the direction. Arithmetic
// saturates at 0 and 255. A zero max is an empty magnitude range and leaves
// the value untouched.
func ShiftChannel(v, max uint8, rng *random.RNG) uint8 {
	if max == 0 {
		return v
	}
	r := rng.Uint8n(max)
	if rng.Bool() {
		if r > v {
			return 0
		}
		return v - r
	}
	if r > 255-v {
		return 255
	}
	return v + r
}

// Shift returns a copy of c with every channel perturbed independently by at
// most max, using fresh draws per channel in R, G, B order.
func (c Color) Shift(max uint8, rng *random.RNG) Color {
	return Color{
		R: ShiftChannel(c.R, max, rng),
		G: ShiftChannel(c.G, max, rng),
		B: ShiftChannel(c.B, max, rng),
	}
}
