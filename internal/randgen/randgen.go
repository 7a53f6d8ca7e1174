// Package randgen implements random Value and name generation (spec §4.5),
// grounded on original_source/rand.c: bounded random ints/reals, random
// names of bounded length, and random code trees built from the
// interpreter's registered instructions, literals, and bound names.
package randgen

import (
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// RandomName returns a new Value wrapping a freshly interned random name,
// its length uniformly chosen between the interpreter's configured
// MIN/MAX-RANDOM-NAME-LENGTH (spec §4.5, §6).
func RandomName(ip *interp.Interpreter) *value.Value {
	min := ip.ConfigInt(interp.ConfigMinRandomNameLength, 2)
	max := ip.ConfigInt(interp.ConfigMaxRandomNameLength, 16)
	if max < min {
		max = min
	}
	length := min
	if span := max - min; span > 0 {
		length = min + int64(ip.Rand().Intn(int(span)+1))
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = nameAlphabet[ip.Rand().Intn(len(nameAlphabet))]
	}
	return ip.NewNameValue(ip.Intern(string(buf)))
}

// RandomInt returns a uniformly distributed int Value within the
// interpreter's configured MIN/MAX-RANDOM-INT bounds (spec §4.5, §6).
func RandomInt(ip *interp.Interpreter) *value.Value {
	min := ip.ConfigInt(interp.ConfigMinRandomInt, -100)
	max := ip.ConfigInt(interp.ConfigMaxRandomInt, 100)
	if max < min {
		max = min
	}
	span := max - min
	n := min
	if span > 0 {
		n = min + ip.Rand().Int63n(span+1)
	}
	return ip.NewInt(n)
}

// RandomReal returns a uniformly distributed real Value within the
// interpreter's configured MIN/MAX-RANDOM-REAL bounds (spec §4.5, §6).
func RandomReal(ip *interp.Interpreter) *value.Value {
	min := ip.ConfigReal(interp.ConfigMinRandomReal, 0.0)
	max := ip.ConfigReal(interp.ConfigMaxRandomReal, 1.0)
	if max < min {
		max = min
	}
	r := min + ip.Rand().Float64()*(max-min)
	return ip.NewReal(r)
}

// RandomBool returns a uniformly chosen bool Value.
func RandomBool(ip *interp.Interpreter) *value.Value {
	return ip.NewBool(ip.Rand().Intn(2) == 1)
}

// pushTypeOrder mirrors original_source/rand.h's PUSH_TYPE enum ordering
// (BOOL=1 .. REAL=6), which rand.c's uniform atom-type selection relies on.
var pushTypeOrder = []string{"BOOLEAN", "INTEGER", "NAME", "CODE", "EXEC", "FLOAT"}

// RandomAtom returns a single random leaf Value (not a list): a literal
// bool/int/real, a random name (possibly ERC-flavored per
// NEW-ERC-NAME-PROBABILITY), or a random registered instruction. The draw is
// uniform over the six pushTypeOrder entries, and both CODE and EXEC yield
// an instruction, so an instruction comes out with probability 1/3 and each
// other kind with 1/6; this follows rand.c's push_random_value for
// size == 1.
func RandomAtom(ip *interp.Interpreter) *value.Value {
	switch pushTypeOrder[ip.Rand().Intn(len(pushTypeOrder))] {
	case "BOOLEAN":
		return RandomBool(ip)
	case "INTEGER":
		return RandomInt(ip)
	case "FLOAT":
		return RandomReal(ip)
	case "NAME":
		ercProb := ip.ConfigReal(interp.ConfigNewERCNameProb, 0.1)
		if len(ip.BoundNames()) == 0 || ip.Rand().Float64() < ercProb {
			return RandomName(ip)
		}
		bound := ip.BoundNames()
		return ip.NewNameValue(bound[ip.Rand().Intn(len(bound))])
	default:
		return RandomInstr(ip)
	}
}

// RandomInstr returns a Value wrapping a uniformly chosen registered
// instruction, or an Int(0) literal if none are registered.
func RandomInstr(ip *interp.Interpreter) *value.Value {
	names := ip.InstrNames()
	if len(names) == 0 {
		return ip.NewInt(0)
	}
	return ip.NewInstrValue(names[ip.Rand().Intn(len(names))])
}

// RandomCode returns a random code tree of at most maxPoints points (spec
// §4.5's "random_value for CODE/EXEC"), grounded on rand.c's recursive
// push_random_code: each call either yields an atom or recurses into a
// sublist, consuming the point budget as it goes.
func RandomCode(ip *interp.Interpreter, maxPoints int) *value.Value {
	if maxPoints <= 1 {
		return RandomAtom(ip)
	}
	if ip.Rand().Intn(4) == 0 {
		// 1-in-4 chance of a bare atom even with budget remaining, so
		// random trees don't always bottom out at maximum depth.
		return RandomAtom(ip)
	}
	childCount := 1 + ip.Rand().Intn(4)
	remaining := maxPoints - 1
	items := make([]*value.Value, 0, childCount)
	for i := 0; i < childCount && remaining > 0; i++ {
		share := remaining / (childCount - i)
		if share < 1 {
			share = 1
		}
		child := RandomCode(ip, share)
		items = append(items, child)
		remaining -= value.Size(child)
	}
	return ip.NewCode(value.CodeOf(items...))
}
