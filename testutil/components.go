package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/logger"
)

// AddFixedValue adds a fixed amount to an integer. The amount can also be
// supplied per run through the optional add socket.
type AddFixedValue struct {
	// Add is the default amount, used when the add socket receives nothing.
	Add int
}

// NewAddFixedValue returns an AddFixedValue adding 1.
func NewAddFixedValue() *AddFixedValue { return &AddFixedValue{Add: 1} }

func (c *AddFixedValue) InputSockets() []component.InputSocket {
	return []component.InputSocket{
		component.Input("value", component.TypeOf[int]()),
		component.InputWithDefault("add", component.TypeOf[int](), c.Add),
	}
}

func (c *AddFixedValue) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("result", component.TypeOf[int]())}
}

func (c *AddFixedValue) Run(_ context.Context, inputs map[string]any) (any, error) {
	return map[string]any{"result": inputs["value"].(int) + inputs["add"].(int)}, nil
}

// Double doubles an integer.
type Double struct{}

func (Double) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (Double) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("value", component.TypeOf[int]())}
}

func (Double) Run(_ context.Context, inputs map[string]any) (any, error) {
	return map[string]any{"value": inputs["value"].(int) * 2}, nil
}

// Parity routes an integer to its even or odd output. Exactly one output
// fires per run.
type Parity struct{}

func (Parity) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (Parity) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{
		component.Output("even", component.TypeOf[int]()),
		component.Output("odd", component.TypeOf[int]()),
	}
}

func (Parity) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	if value%2 == 0 {
		return map[string]any{"even": value}, nil
	}
	return map[string]any{"odd": value}, nil
}

// Threshold routes an integer below or above a configured threshold.
type Threshold struct {
	Threshold int
}

// NewThreshold returns a Threshold at 10.
func NewThreshold() *Threshold { return &Threshold{Threshold: 10} }

func (c *Threshold) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (c *Threshold) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{
		component.Output("above", component.TypeOf[int]()),
		component.Output("below", component.TypeOf[int]()),
	}
}

func (c *Threshold) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	if value < c.Threshold {
		return map[string]any{"below": value}, nil
	}
	return map[string]any{"above": value}, nil
}

// Remainder routes an integer to the output matching its remainder modulo
// Divisor. One output socket exists per possible remainder.
type Remainder struct {
	Divisor int
}

func (c *Remainder) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (c *Remainder) OutputSockets() []component.OutputSocket {
	outs := make([]component.OutputSocket, c.Divisor)
	for i := range outs {
		outs[i] = component.Output(fmt.Sprintf("remainder_is_%d", i), component.TypeOf[int]())
	}
	return outs
}

func (c *Remainder) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	socket := fmt.Sprintf("remainder_is_%d", value%c.Divisor)
	return map[string]any{socket: value}, nil
}

// Repeat emits its input value on every configured output.
type Repeat struct {
	Outputs []string
}

func (c *Repeat) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (c *Repeat) OutputSockets() []component.OutputSocket {
	outs := make([]component.OutputSocket, len(c.Outputs))
	for i, name := range c.Outputs {
		outs[i] = component.Output(name, component.TypeOf[int]())
	}
	return outs
}

func (c *Repeat) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	result := make(map[string]any, len(c.Outputs))
	for _, name := range c.Outputs {
		result[name] = value
	}
	return result, nil
}

// Sum totals the integers accumulated on its variadic values socket. The
// socket is lazy: the run waits for every pending branch before firing.
type Sum struct{}

func (Sum) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.VariadicInput("values", component.TypeOf[int]())}
}

func (Sum) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("total", component.TypeOf[int]())}
}

func (Sum) Run(_ context.Context, inputs map[string]any) (any, error) {
	total := 0
	for _, v := range inputs["values"].([]any) {
		total += v.(int)
	}
	return map[string]any{"total": total}, nil
}

// Subtract computes first_value minus second_value.
type Subtract struct{}

func (Subtract) InputSockets() []component.InputSocket {
	return []component.InputSocket{
		component.Input("first_value", component.TypeOf[int]()),
		component.Input("second_value", component.TypeOf[int]()),
	}
}

func (Subtract) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("difference", component.TypeOf[int]())}
}

func (Subtract) Run(_ context.Context, inputs map[string]any) (any, error) {
	return map[string]any{"difference": inputs["first_value"].(int) - inputs["second_value"].(int)}, nil
}

// Greet logs a templated message and passes its input through unchanged.
type Greet struct {
	// Message is the default log template; {value} is replaced with the
	// input value.
	Message string
	// Log receives the greeting. Nil disables logging.
	Log *logger.Logger
}

// NewGreet returns a Greet with a generic message and no logger.
func NewGreet() *Greet { return &Greet{Message: "Greeting message, the value is {value}."} }

func (c *Greet) InputSockets() []component.InputSocket {
	return []component.InputSocket{
		component.Input("value", component.TypeOf[int]()),
		component.InputWithDefault("message", component.TypeOf[string](), c.Message),
		component.InputWithDefault("log_level", component.TypeOf[string](), "info"),
	}
}

func (c *Greet) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("value", component.TypeOf[int]())}
}

func (c *Greet) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	if c.Log != nil {
		message := strings.ReplaceAll(inputs["message"].(string), "{value}", fmt.Sprint(value))
		switch inputs["log_level"].(string) {
		case "debug":
			c.Log.Debug(message)
		case "warn":
			c.Log.Warn(message)
		default:
			c.Log.Info(message)
		}
	}
	return map[string]any{"value": value}, nil
}

// Accumulate folds each input value into its running state and emits the
// new state. The default fold is addition. The state survives across runs
// of the owning pipeline.
type Accumulate struct {
	// Func folds the current state with the incoming value. Nil means
	// addition.
	Func  func(state, value int) int
	state int
}

func (c *Accumulate) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("value", component.TypeOf[int]())}
}

func (c *Accumulate) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("value", component.TypeOf[int]())}
}

func (c *Accumulate) Run(_ context.Context, inputs map[string]any) (any, error) {
	value := inputs["value"].(int)
	if c.Func != nil {
		c.state = c.Func(c.state, value)
	} else {
		c.state += value
	}
	return map[string]any{"value": c.state}, nil
}

// State returns the accumulated value.
func (c *Accumulate) State() int { return c.state }

// SelfLoop counts its input down through a connection back to itself,
// emitting current_value until the countdown reaches zero and final_result
// fires.
type SelfLoop struct{}

func (SelfLoop) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.VariadicInput("values", component.TypeOf[int]())}
}

func (SelfLoop) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{
		component.Output("current_value", component.TypeOf[int]()),
		component.Output("final_result", component.TypeOf[int]()),
	}
}

func (SelfLoop) Run(_ context.Context, inputs map[string]any) (any, error) {
	values := inputs["values"].([]any)
	value := values[0].(int) - 1
	if value == 0 {
		return map[string]any{"final_result": value}, nil
	}
	return map[string]any{"current_value": value}, nil
}

// Multiplexer forwards whichever single value arrives on its greedy value
// socket. Receiving more than one value in the same step is an error.
type Multiplexer struct{}

func (Multiplexer) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.GreedyInput("value", component.TypeOf[int]())}
}

func (Multiplexer) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("value", component.TypeOf[int]())}
}

func (Multiplexer) Run(_ context.Context, inputs map[string]any) (any, error) {
	values := inputs["value"].([]any)
	if len(values) != 1 {
		return nil, fmt.Errorf("multiplexer expects one value per step, got %d", len(values))
	}
	return map[string]any{"value": values[0]}, nil
}

// Hello turns a word into a greeting string.
type Hello struct{}

func (Hello) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("word", component.TypeOf[string]())}
}

func (Hello) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("output", component.TypeOf[string]())}
}

func (Hello) Run(_ context.Context, inputs map[string]any) (any, error) {
	return map[string]any{"output": fmt.Sprintf("Hello, %s!", inputs["word"].(string))}, nil
}

// FString formats a template with named variables. Each configured
// variable becomes an input socket, and the template itself can be
// overridden per run through the optional template socket.
type FString struct {
	Template  string
	Variables []string
}

func (c *FString) InputSockets() []component.InputSocket {
	sockets := make([]component.InputSocket, 0, len(c.Variables)+1)
	sockets = append(sockets, component.InputWithDefault("template", component.TypeOf[string](), c.Template))
	for _, name := range c.Variables {
		sockets = append(sockets, component.Input(name, component.TypeOf[string]()))
	}
	return sockets
}

func (c *FString) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("string", component.TypeOf[string]())}
}

func (c *FString) Run(_ context.Context, inputs map[string]any) (any, error) {
	out := inputs["template"].(string)
	for _, name := range c.Variables {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(inputs[name]))
	}
	return map[string]any{"string": out}, nil
}

// TextSplitter splits a sentence on whitespace.
type TextSplitter struct{}

func (TextSplitter) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.Input("sentence", component.TypeOf[string]())}
}

func (TextSplitter) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("output", component.TypeOf[[]string]())}
}

func (TextSplitter) Run(_ context.Context, inputs map[string]any) (any, error) {
	return map[string]any{"output": strings.Fields(inputs["sentence"].(string))}, nil
}

// StringListJoiner concatenates the string lists accumulated on its
// variadic inputs socket, preserving arrival order.
type StringListJoiner struct{}

func (StringListJoiner) InputSockets() []component.InputSocket {
	return []component.InputSocket{component.VariadicInput("inputs", component.TypeOf[[]string]())}
}

func (StringListJoiner) OutputSockets() []component.OutputSocket {
	return []component.OutputSocket{component.Output("output", component.TypeOf[[]string]())}
}

func (StringListJoiner) Run(_ context.Context, inputs map[string]any) (any, error) {
	var out []string
	for _, v := range inputs["inputs"].([]any) {
		out = append(out, v.([]string)...)
	}
	return map[string]any{"output": out}, nil
}
