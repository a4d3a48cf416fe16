package chrono

import (
	"golang.org/x/text/language"

	"github.com/jacoelho/chrono/field"
)

// passthrough forwards the instant-free operations of a field: text
// rendering and partial arithmetic. Wrappers that only adjust instants
// embed it next to their own field.Decorated.
type passthrough struct {
	wrapped field.DateTimeField
}

func (p passthrough) ValueText(value int, tag language.Tag) string {
	return p.wrapped.ValueText(value, tag)
}

func (p passthrough) ValueShortText(value int, tag language.Tag) string {
	return p.wrapped.ValueShortText(value, tag)
}

func (p passthrough) ParseText(text string, tag language.Tag) (int, error) {
	return p.wrapped.ParseText(text, tag)
}

func (p passthrough) MaximumTextLength(tag language.Tag) int { return p.wrapped.MaximumTextLength(tag) }

func (p passthrough) MaximumShortTextLength(tag language.Tag) int {
	return p.wrapped.MaximumShortTextLength(tag)
}

func (p passthrough) MinimumValuePartial(pt field.Partial, values []int) int {
	return p.wrapped.MinimumValuePartial(pt, values)
}

func (p passthrough) MaximumValuePartial(pt field.Partial, values []int) int {
	return p.wrapped.MaximumValuePartial(pt, values)
}

func (p passthrough) SetPartial(pt field.Partial, index int, values []int, value int) ([]int, error) {
	return p.wrapped.SetPartial(pt, index, values, value)
}

func (p passthrough) AddPartial(pt field.Partial, index int, values []int, amount int) ([]int, error) {
	return p.wrapped.AddPartial(pt, index, values, amount)
}

func (p passthrough) AddWrapPartial(pt field.Partial, index int, values []int, amount int) ([]int, error) {
	return p.wrapped.AddWrapPartial(pt, index, values, amount)
}

func (p passthrough) AddWrapFieldPartial(pt field.Partial, index int, values []int, amount int) ([]int, error) {
	return p.wrapped.AddWrapFieldPartial(pt, index, values, amount)
}
