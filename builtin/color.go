package builtin

import (
	"fmt"

	"github.com/titpetric/sassgo/value"
)

// registerColor wires the color builtins, grounded on lessgo's
// expression/color.go (Lighten/Darken/Saturate/Desaturate/Mix/Grayscale/
// Invert) by routing every channel-adjustment builtin through
// value.Color.Adjust, and on its rgba()/hsl() constructors.
func registerColor(r *Registry) {
	r.register("rgb", rgbCtor)
	r.register("rgba", rgbCtor)
	r.register("hsl", hslCtor)
	r.register("hsla", hslCtor)

	r.register("red", channel(func(c value.Color) uint8 { return c.R }))
	r.register("green", channel(func(c value.Color) uint8 { return c.G }))
	r.register("blue", channel(func(c value.Color) uint8 { return c.B }))
	r.register("alpha", func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		return value.Dim(ratFloat(c.A), value.NoUnit), nil
	})
	r.register("opacity", r.funcs["alpha"])

	r.register("hue", hslChannel(0))
	r.register("saturation", hslChannel(1))
	r.register("lightness", hslChannel(2))

	r.register("mix", func(a Args) (value.Value, error) {
		c1, err := colorArg(a, 0, "color1")
		if err != nil {
			return nil, err
		}
		c2, err := colorArg(a, 1, "color2")
		if err != nil {
			return nil, err
		}
		w := 50.0
		if wv := a.Get(2, "weight", nil); wv != nil {
			w = numFloat(wv)
		}
		return value.ColorValue{Color: value.Mix(c1, c2, w)}, nil
	})
	r.register("grayscale", func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		return value.ColorValue{Color: c.Grayscale()}, nil
	})
	r.register("invert", func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		w := 100.0
		if wv := a.Get(1, "weight", nil); wv != nil {
			w = numFloat(wv)
		}
		return value.ColorValue{Color: c.Invert(w)}, nil
	})
	r.register("complement", func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		return value.ColorValue{Color: c.Complement()}, nil
	})

	r.register("lighten", adjust(0, 0, 1))
	r.register("darken", adjust(0, 0, -1))
	r.register("saturate", adjust(0, 1, 0))
	r.register("desaturate", adjust(0, -1, 0))
	r.register("adjust-hue", adjust(1, 0, 0))

	r.register("adjust-color", func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		dh := optFloat(a, "hue")
		ds := optFloat(a, "saturation")
		dl := optFloat(a, "lightness")
		da := optFloat(a, "alpha")
		return value.ColorValue{Color: c.Adjust(dh, ds, dl, da)}, nil
	})
}

func rgbCtor(a Args) (value.Value, error) {
	r := byteArg(a, 0, "red")
	g := byteArg(a, 1, "green")
	b := byteArg(a, 2, "blue")
	alpha := 1.0
	if av := a.Get(3, "alpha", nil); av != nil {
		alpha = numFloat(av)
	}
	return value.ColorValue{Color: value.RGBA(r, g, b, alpha)}, nil
}

func hslCtor(a Args) (value.Value, error) {
	h := numFloat(a.Get(0, "hue", nil))
	s := numFloat(a.Get(1, "saturation", nil))
	l := numFloat(a.Get(2, "lightness", nil))
	alpha := 1.0
	if av := a.Get(3, "alpha", nil); av != nil {
		alpha = numFloat(av)
	}
	return value.ColorValue{Color: value.HSLA(h, s, l, alpha)}, nil
}

func colorArg(a Args, i int, name string) (value.Color, error) {
	v := a.Get(i, name, nil)
	if v == nil {
		return value.Color{}, fmt.Errorf("missing argument $%s", name)
	}
	ev, err := value.Eval(v)
	if err != nil {
		return value.Color{}, err
	}
	cv, ok := ev.(value.ColorValue)
	if !ok {
		return value.Color{}, fmt.Errorf("$%s: %s is not a color", name, value.Inspect(ev))
	}
	return cv.Color, nil
}

func channel(f func(value.Color) uint8) Func {
	return func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		return value.Dim(value.NewNumberInt(int64(f(c))), value.NoUnit), nil
	}
}

func hslChannel(idx int) Func {
	return func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		h, s, l := c.HSL()
		vals := [3]float64{h, s, l}
		unit := value.NoUnit
		if idx != 0 {
			unit = value.NewUnit("%")
		}
		return value.Dim(ratFloat(vals[idx]), unit), nil
	}
}

func adjust(dh, ds, dl float64) Func {
	return func(a Args) (value.Value, error) {
		c, err := colorArg(a, 0, "color")
		if err != nil {
			return nil, err
		}
		amt := numFloat(a.Get(1, "amount", nil))
		return value.ColorValue{Color: c.Adjust(dh * amt, ds*amt, dl*amt, 0)}, nil
	}
}

func optFloat(a Args, name string) float64 {
	if v, ok := a.Named[name]; ok {
		return numFloat(v)
	}
	return 0
}

func byteArg(a Args, i int, name string) uint8 {
	f := numFloat(a.Get(i, name, nil))
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

func numFloat(v value.Value) float64 {
	ev, err := value.Eval(v)
	if err != nil {
		return 0
	}
	d, ok := ev.(value.Dimension)
	if !ok {
		return 0
	}
	f, _ := d.Num.Rat().Float64()
	return f
}

func ratFloat(f float64) value.Number {
	s, ok := value.NewNumberString(fmt.Sprintf("%g", f))
	if !ok {
		return value.NewNumberInt(0)
	}
	return s
}
