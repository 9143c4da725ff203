package jvm

import (
	"encoding/binary"
)

// Annotation is a runtime-visible annotation with element values.
type Annotation struct {
	// Descriptor is the annotation type descriptor, e.g. "Lkotlin/Metadata;".
	Descriptor string
	Elements   []Element
}

// Element is one name/value pair of an annotation.
type Element struct {
	Name  string
	Value Value
}

// Value is an annotation element value: IntValue, StringValue or ArrayValue.
type Value interface {
	appendTo(p *ConstantPool, out []byte) []byte
}

// IntValue is an int element value (tag 'I').
type IntValue int32

// StringValue is a String element value (tag 's').
type StringValue string

// ArrayValue is an array element value (tag '[').
type ArrayValue []Value

func (v IntValue) appendTo(p *ConstantPool, out []byte) []byte {
	return binary.BigEndian.AppendUint16(append(out, 'I'), p.Integer(int32(v)))
}

func (v StringValue) appendTo(p *ConstantPool, out []byte) []byte {
	return binary.BigEndian.AppendUint16(append(out, 's'), p.Utf8(string(v)))
}

func (v ArrayValue) appendTo(p *ConstantPool, out []byte) []byte {
	out = binary.BigEndian.AppendUint16(append(out, '['), uint16(len(v)))
	for _, e := range v {
		out = e.appendTo(p, out)
	}

	return out
}

// Ints converts ints to an ArrayValue.
func Ints(vs ...int) ArrayValue {
	arr := make(ArrayValue, 0, len(vs))
	for _, v := range vs {
		arr = append(arr, IntValue(v))
	}

	return arr
}

// Strings converts strings to an ArrayValue.
func Strings(vs ...string) ArrayValue {
	arr := make(ArrayValue, 0, len(vs))
	for _, v := range vs {
		arr = append(arr, StringValue(v))
	}

	return arr
}

func (a Annotation) appendTo(p *ConstantPool, out []byte) []byte {
	out = binary.BigEndian.AppendUint16(out, p.Utf8(a.Descriptor))
	out = binary.BigEndian.AppendUint16(out, uint16(len(a.Elements)))

	for _, e := range a.Elements {
		out = binary.BigEndian.AppendUint16(out, p.Utf8(e.Name))
		out = e.Value.appendTo(p, out)
	}

	return out
}
