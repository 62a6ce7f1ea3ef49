// Package vecflag reads vectors from the command line in their rendered
// "x y" form.
package vecflag

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"geom2"
)

// Parse reads a vector written as two whitespace separated components.
func Parse[T geom2.Real](s string) (geom2.Sq[T], error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return geom2.Sq[T]{}, errors.Errorf("vector %q: want 2 components, got %d", s, len(fields))
	}
	x, err := parseScalar[T](fields[0])
	if err != nil {
		return geom2.Sq[T]{}, errors.Wrapf(err, "vector %q: x", s)
	}
	y, err := parseScalar[T](fields[1])
	if err != nil {
		return geom2.Sq[T]{}, errors.Wrapf(err, "vector %q: y", s)
	}
	return geom2.New(x, y), nil
}

func parseScalar[T geom2.Real](s string) (T, error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(i), nil
	default:
		u, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return 0, err
		}
		return T(u), nil
	}
}

// Value is a pflag.Value holding a vector.
type Value[T geom2.Real] struct {
	v *geom2.Sq[T]
}

var _ pflag.Value = (*Value[int32])(nil)

// New returns a flag value that stores into p. The current value of p is
// the default.
func New[T geom2.Real](p *geom2.Sq[T]) *Value[T] {
	return &Value[T]{v: p}
}

// Var defines a vector flag on fs.
func Var[T geom2.Real](fs *pflag.FlagSet, p *geom2.Sq[T], name, usage string) {
	fs.Var(New(p), name, usage)
}

func (f *Value[T]) Set(s string) error {
	v, err := Parse[T](s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

func (f *Value[T]) String() string {
	if f == nil || f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f *Value[T]) Type() string { return "vec2" }
