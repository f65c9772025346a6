package regolith

import "strings"

// Option is a bitmask of inline matching options.
// Combine options with bitwise OR, e.g. IgnoreCase|Multiline.
type Option uint8

const (
	// Case-insensitive matching ("i").
	IgnoreCase Option = 1 << iota

	// "^" and "$" match at line boundaries ("m").
	Multiline

	// Only named groups capture ("n").
	ExplicitCapture

	// "." matches every character including "\n" ("s").
	Singleline

	// Unescaped whitespace is ignored and "#" starts a comment ("x").
	IgnorePatternWhitespace

	allOptions = IgnoreCase | Multiline | ExplicitCapture | Singleline | IgnorePatternWhitespace
)

var optionLetters = [...]struct {
	opt    Option
	letter byte
}{
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{ExplicitCapture, 'n'},
	{Singleline, 's'},
	{IgnorePatternWhitespace, 'x'},
}

// String returns the inline letters of the options, e.g. "im".
func (o Option) String() string {
	var sb strings.Builder
	for _, ol := range optionLetters {
		if o&ol.opt != 0 {
			sb.WriteByte(ol.letter)
		}
	}
	return sb.String()
}

func validateOptions(op string, apply, disable Option) error {
	if apply&^allOptions != 0 || disable&^allOptions != 0 {
		return newArgumentError(op, ErrUnknownOption, "bits %#x", (apply|disable)&^allOptions)
	}
	if apply == 0 && disable == 0 {
		return newArgumentError(op, ErrNoOptions, "")
	}
	if both := apply & disable; both != 0 {
		return newArgumentError(op, ErrConflictingOptions, "%q", both.String())
	}
	return nil
}

type stack[T any] []T

func (s *stack[T]) push(v T) { *s = append(*s, v) }

func (s *stack[T]) peekPtr() *T { return &(*s)[len(*s)-1] }

func (s *stack[T]) pop() T {
	i := len(*s) - 1
	v := (*s)[i]
	*s = (*s)[:i]
	return v
}

// optionsStack tracks the options active at the current render position.
// The top entry is the active set; entries are pushed when a group or a
// wrapping options scope opens and popped when it closes.
type optionsStack struct {
	s stack[Option]
}

func newOptionsStack(initial Option) optionsStack {
	return optionsStack{s: stack[Option]{initial}}
}

func (s *optionsStack) active() Option {
	return *s.s.peekPtr()
}

// enter opens a nested scope that starts with the outer options.
func (s *optionsStack) enter() {
	s.s.push(s.active())
}

// toggle changes the current scope until it is left.
func (s *optionsStack) toggle(apply, disable Option) {
	top := s.s.peekPtr()
	*top = (*top | apply) &^ disable
}

func (s *optionsStack) leave() {
	if len(s.s) > 1 {
		s.s.pop()
	}
}
