package vm

import (
	"fmt"
	"sync"

	"sentra/internal/bytecode"
)

// Value is anything the VM can push on its stack: a float64 or string
// literal, bool, nil, or one of the pointer types below.
type Value interface{}

// Function is a compiled, callable script function. Module is nil for a
// function defined at the top level of the currently executing file;
// performCall switches the VM's global table to Module.Globals/GlobalMap
// for the duration of the call when it is not.
type Function struct {
	Name       string
	Arity      int
	IsVariadic bool
	Chunk      *bytecode.Chunk
	Module     *Module
}

// NativeFunction wraps a Go function exposed to script code, either as a
// built-in module export or a method bound via BoundMethod.
type NativeFunction struct {
	Name     string
	Arity    int
	Function func(args []Value) (Value, error)
}

// BoundMethod pairs a receiver with a method name, resolved against the
// global NativeFunction table at call time. Collection builtins (push,
// pop, shift, unshift, ...) are modeled this way rather than as methods on
// Array/Map directly, so they share the same calling convention as every
// other callable value.
type BoundMethod struct {
	Object Value
	Method string
}

// Array is the script-visible mutable list type.
type Array struct {
	Elements []Value
}

// NewArray returns an empty Array with capacity for count elements.
func NewArray(count int) *Array {
	return &Array{Elements: make([]Value, 0, count)}
}

// Map is the script-visible string-keyed dictionary type. Scripts can
// share a Map across spawned goroutines, so access is guarded by mu.
type Map struct {
	Items map[string]Value
	mu    sync.RWMutex
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{Items: make(map[string]Value)}
}

// String is the boxed script string type, distinct from the bare Go
// string values produced by literals so that builtins can attach identity
// (e.g. for mutation-free indexing and concatenation helpers).
type String struct {
	Value string
}

// NewString boxes a Go string as a script String.
func NewString(s string) *String {
	return &String{Value: s}
}

// Module is a loaded script module, either a named built-in (see
// EnhancedVM.loadModule) or the result of parsing and running a .sn file
// through the module loader. Globals/GlobalMap let a module's own
// functions close over their defining module's top-level bindings instead
// of the caller's.
type Module struct {
	Name      string
	Path      string
	Exports   map[string]Value
	Loaded    bool
	Globals   []Value
	GlobalMap map[string]int
}

// Error is a thrown script error, the value OpThrow/OpTry unwind with.
type Error struct {
	Message string
}

// NewError wraps a message as a thrown Error.
func NewError(message string) *Error {
	return &Error{Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Channel is a buffered, closable communication channel shared between
// goroutines spawned with OpSpawn.
type Channel struct {
	ch     chan Value
	mu     sync.Mutex
	closed bool
}

// NewChannel returns a Channel with the given buffer size.
func NewChannel(buffer int) *Channel {
	if buffer < 0 {
		buffer = 0
	}
	return &Channel{ch: make(chan Value, buffer)}
}

// Close marks ch closed; a pending or future Recv drains any buffered
// values and then reports ok=false.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
}

// ToString renders any Value the way script string concatenation and map
// keying expect.
func ToString(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return t
	case *String:
		return t.Value
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(t)
	case int:
		return fmt.Sprintf("%d", t)
	case *Function:
		return fmt.Sprintf("<fn %s>", t.Name)
	case *NativeFunction:
		return fmt.Sprintf("<native fn %s>", t.Name)
	case *Array:
		return fmt.Sprintf("<array len=%d>", len(t.Elements))
	case *Map:
		return fmt.Sprintf("<map len=%d>", len(t.Items))
	case *Error:
		return t.Message
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// ToNumber coerces a Value to float64 the way arithmetic opcodes expect,
// yielding 0 for anything that does not carry a numeric representation.
func ToNumber(v Value) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		var f float64
		if _, err := fmt.Sscanf(t, "%g", &f); err == nil {
			return f
		}
		return 0
	case *String:
		return ToNumber(t.Value)
	default:
		return 0
	}
}

// ValueType names the dynamic type of v the way script code's type()
// builtin reports it.
func ValueType(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64, int:
		return "number"
	case string, *String:
		return "string"
	case *Array:
		return "array"
	case *Map:
		return "map"
	case *Function, *NativeFunction, *BoundMethod:
		return "function"
	case *Error:
		return "error"
	case *Channel:
		return "channel"
	default:
		return "unknown"
	}
}

// ToBool applies script truthiness: nil and false are falsy, the number
// 0 is falsy, everything else (including empty strings/collections) is
// truthy.
func ToBool(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

// valuesEqual compares two Values for script equality, unboxing String
// before the comparison so a boxed and bare string compare equal.
func valuesEqual(a, b Value) bool {
	if as, ok := a.(*String); ok {
		a = as.Value
	}
	if bs, ok := b.(*String); ok {
		b = bs.Value
	}
	return a == b
}

func PrintValue(val Value) {
	switch v := val.(type) {
	case *Function:
		fmt.Printf("<fn %s>\n", v.Name)
	case *NativeFunction:
		fmt.Printf("<native fn %s>\n", v.Name)
	case *String:
		fmt.Println(v.Value)
	case *Error:
		fmt.Printf("error: %s\n", v.Message)
	default:
		fmt.Println(val)
	}
}
