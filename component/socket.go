package component

import "reflect"

// InputSocket declares a named, typed input slot on a component.
type InputSocket struct {
	// Name is the socket identifier, unique among the component's inputs.
	Name string
	// Type is the expected value type. A nil Type accepts anything.
	Type reflect.Type
	// Default is the value used when no connection delivers this run.
	// Only meaningful when HasDefault is true.
	Default any
	// HasDefault marks the socket as optional.
	HasDefault bool
	// Variadic sockets accept multiple incoming connections and accumulate
	// delivered values into an ordered slice.
	Variadic bool
	// Greedy variadic sockets fire as soon as one value arrives instead of
	// waiting for the remaining upstream branches.
	Greedy bool
}

// OutputSocket declares a named, typed output slot on a component.
type OutputSocket struct {
	Name string
	Type reflect.Type
}

// Input declares a required input socket.
func Input(name string, typ reflect.Type) InputSocket {
	return InputSocket{Name: name, Type: typ}
}

// InputWithDefault declares an optional input socket with a default value.
func InputWithDefault(name string, typ reflect.Type, def any) InputSocket {
	return InputSocket{Name: name, Type: typ, Default: def, HasDefault: true}
}

// VariadicInput declares a lazy variadic input socket.
func VariadicInput(name string, typ reflect.Type) InputSocket {
	return InputSocket{Name: name, Type: typ, Variadic: true}
}

// GreedyInput declares a greedy variadic input socket.
func GreedyInput(name string, typ reflect.Type) InputSocket {
	return InputSocket{Name: name, Type: typ, Variadic: true, Greedy: true}
}

// Output declares an output socket.
func Output(name string, typ reflect.Type) OutputSocket {
	return OutputSocket{Name: name, Type: typ}
}

// TypeOf returns the reflect.Type for T. Socket declaration helper.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Compatible reports whether a value of type src may flow into a socket of
// type dst. A nil type on either side accepts anything.
func Compatible(src, dst reflect.Type) bool {
	if src == nil || dst == nil {
		return true
	}
	if src == dst {
		return true
	}
	if dst.Kind() == reflect.Interface {
		return src.Implements(dst)
	}
	return src.AssignableTo(dst)
}
