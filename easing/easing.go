package easing

// Curve is a cubic-Bézier timing function anchored at (0,0) and (1,1),
// shaped by two control points. Curves are immutable values; pass them
// by value.
type Curve struct {
	X1, Y1, X2, Y2 float64
}

// Linear is the identity curve.
var Linear = Curve{0, 0, 1, 1}

// The preset catalog. Control points follow the conventional
// approximations of the classic Penner easing functions.
var (
	InSine    = Curve{0.47, 0, 0.745, 0.715}
	OutSine   = Curve{0.39, 0.575, 0.565, 1}
	InOutSine = Curve{0.445, 0.05, 0.55, 0.95}

	InQuad    = Curve{0.55, 0.085, 0.68, 0.53}
	OutQuad   = Curve{0.25, 0.46, 0.45, 0.94}
	InOutQuad = Curve{0.455, 0.03, 0.515, 0.955}

	InCubic    = Curve{0.55, 0.055, 0.675, 0.19}
	OutCubic   = Curve{0.215, 0.61, 0.355, 1}
	InOutCubic = Curve{0.645, 0.045, 0.355, 1}

	InQuart    = Curve{0.895, 0.03, 0.685, 0.22}
	OutQuart   = Curve{0.165, 0.84, 0.44, 1}
	InOutQuart = Curve{0.77, 0, 0.175, 1}

	InQuint    = Curve{0.755, 0.05, 0.855, 0.06}
	OutQuint   = Curve{0.23, 1, 0.32, 1}
	InOutQuint = Curve{0.86, 0, 0.07, 1}

	InExpo    = Curve{0.95, 0.05, 0.795, 0.035}
	OutExpo   = Curve{0.19, 1, 0.22, 1}
	InOutExpo = Curve{1, 0, 0, 1}

	InCirc    = Curve{0.6, 0.04, 0.98, 0.335}
	OutCirc   = Curve{0.075, 0.82, 0.165, 1}
	InOutCirc = Curve{0.785, 0.135, 0.15, 0.86}

	InBack    = Curve{0.6, -0.28, 0.735, 0.045}
	OutBack   = Curve{0.175, 0.885, 0.32, 1.275}
	InOutBack = Curve{0.68, -0.55, 0.265, 1.55}
)

type preset struct {
	name  string
	curve Curve
}

var catalog = []preset{
	{"easeInSine", InSine},
	{"easeOutSine", OutSine},
	{"easeInOutSine", InOutSine},
	{"easeInQuad", InQuad},
	{"easeOutQuad", OutQuad},
	{"easeInOutQuad", InOutQuad},
	{"easeInCubic", InCubic},
	{"easeOutCubic", OutCubic},
	{"easeInOutCubic", InOutCubic},
	{"easeInQuart", InQuart},
	{"easeOutQuart", OutQuart},
	{"easeInOutQuart", InOutQuart},
	{"easeInQuint", InQuint},
	{"easeOutQuint", OutQuint},
	{"easeInOutQuint", InOutQuint},
	{"easeInExpo", InExpo},
	{"easeOutExpo", OutExpo},
	{"easeInOutExpo", InOutExpo},
	{"easeInCirc", InCirc},
	{"easeOutCirc", OutCirc},
	{"easeInOutCirc", InOutCirc},
	{"easeInBack", InBack},
	{"easeOutBack", OutBack},
	{"easeInOutBack", InOutBack},
}

var byName = func() map[string]Curve {
	m := make(map[string]Curve, len(catalog))
	for _, p := range catalog {
		m[p.name] = p.curve
	}
	return m
}()

// ByName looks up a preset curve by its catalog name, e.g. "easeInOutSine".
func ByName(name string) (Curve, bool) {
	c, ok := byName[name]
	return c, ok
}

// Name reports the catalog name of c, if c is one of the presets.
func Name(c Curve) (string, bool) {
	for _, p := range catalog {
		if p.curve == c {
			return p.name, true
		}
	}
	return "", false
}

// Names returns the catalog names in their canonical order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.name
	}
	return names
}

// Points returns the four control-point coordinates in x1, y1, x2, y2 order,
// the layout platform animation APIs expect.
func (c Curve) Points() [4]float64 {
	return [4]float64{c.X1, c.Y1, c.X2, c.Y2}
}
