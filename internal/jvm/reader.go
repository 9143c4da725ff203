package jvm

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// Class is a decoded class file.
type Class struct {
	Minor, Major uint16
	Access       uint16
	Name         string
	Super        string
	SourceFile   string
	Methods      []Method
	Annotations  []Annotation
}

// Method is a decoded method.
type Method struct {
	Access       uint16
	Name         string
	Descriptor   string
	Signature    string
	MaxStack     int
	MaxLocals    int
	Code         []byte
	Instructions []Instruction
}

// Instruction is one decoded instruction with its operand resolved against
// the constant pool.
type Instruction struct {
	Offset  int
	Opcode  byte
	Operand string
}

func (i Instruction) String() string {
	if i.Operand == "" {
		return Mnemonic(i.Opcode)
	}

	return Mnemonic(i.Opcode) + " " + i.Operand
}

// Mnemonics returns the instruction listing of m, one entry per instruction.
func (m *Method) Mnemonics() []string {
	out := make([]string, 0, len(m.Instructions))
	for _, in := range m.Instructions {
		out = append(out, in.String())
	}

	return out
}

// Method returns the method with the given name and descriptor.
func (c *Class) Method(name, descriptor string) (*Method, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name && c.Methods[i].Descriptor == descriptor {
			return &c.Methods[i], true
		}
	}

	return nil, false
}

// MethodsNamed returns every overload called name.
func (c *Class) MethodsNamed(name string) []Method {
	var out []Method

	for _, m := range c.Methods {
		if m.Name == name {
			out = append(out, m)
		}
	}

	return out
}

// Annotation returns the class annotation with the given descriptor.
func (c *Class) Annotation(descriptor string) (*Annotation, bool) {
	for i := range c.Annotations {
		if c.Annotations[i].Descriptor == descriptor {
			return &c.Annotations[i], true
		}
	}

	return nil, false
}

// Element returns the named element value.
func (a *Annotation) Element(name string) (Value, bool) {
	for _, e := range a.Elements {
		if e.Name == name {
			return e.Value, true
		}
	}

	return nil, false
}

type poolEntry struct {
	tag  byte
	utf8 string
	a, b uint16
	i32  int32
}

type reader struct {
	data []byte
	pos  int
	err  error
	pool []poolEntry
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}

	if n < 0 || r.pos+n > len(r.data) {
		r.fail(errors.Newf("truncated class file at offset %d", r.pos))
		return nil
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b
}

func (r *reader) u1() byte {
	b := r.bytes(1)
	if b == nil {
		return 0
	}

	return b[0]
}

func (r *reader) u2() uint16 {
	b := r.bytes(2)
	if b == nil {
		return 0
	}

	return binary.BigEndian.Uint16(b)
}

func (r *reader) u4() uint32 {
	b := r.bytes(4)
	if b == nil {
		return 0
	}

	return binary.BigEndian.Uint32(b)
}

func (r *reader) entry(i uint16, tag byte) poolEntry {
	if int(i) <= 0 || int(i) >= len(r.pool) || r.pool[i].tag != tag {
		r.fail(errors.Newf("constant #%d is not of tag %d", i, tag))
		return poolEntry{}
	}

	return r.pool[i]
}

func (r *reader) utf8(i uint16) string { return r.entry(i, TagUtf8).utf8 }

func (r *reader) className(i uint16) string { return r.utf8(r.entry(i, TagClass).a) }

// Parse decodes a class file.
func Parse(data []byte) (*Class, error) {
	r := &reader{data: data}

	if r.u4() != magic {
		return nil, errors.New("not a class file: bad magic")
	}

	c := &Class{Minor: r.u2(), Major: r.u2()}

	r.readPool()

	c.Access = r.u2()
	c.Name = r.className(r.u2())

	if super := r.u2(); super != 0 {
		c.Super = r.className(super)
	}

	r.bytes(2 * int(r.u2())) // interfaces

	for n := r.u2(); n > 0 && r.err == nil; n-- { // fields
		r.bytes(6)
		r.skipAttributes()
	}

	for n := r.u2(); n > 0 && r.err == nil; n-- {
		c.Methods = append(c.Methods, r.readMethod())
	}

	for n := r.u2(); n > 0 && r.err == nil; n-- {
		name := r.utf8(r.u2())
		length := int(r.u4())
		start := r.pos

		switch name {
		case "SourceFile":
			c.SourceFile = r.utf8(r.u2())
		case "RuntimeVisibleAnnotations":
			for k := r.u2(); k > 0 && r.err == nil; k-- {
				c.Annotations = append(c.Annotations, r.readAnnotation())
			}
		default:
			r.bytes(length)
		}

		if r.err == nil && r.pos != start+length {
			r.fail(errors.Newf("attribute %s length mismatch", name))
		}
	}

	if r.err == nil && r.pos != len(data) {
		r.fail(errors.Newf("%d trailing bytes", len(data)-r.pos))
	}

	if r.err != nil {
		return nil, r.err
	}

	return c, nil
}

func (r *reader) readPool() {
	count := int(r.u2())
	r.pool = make([]poolEntry, count)

	for i := 1; i < count && r.err == nil; i++ {
		e := poolEntry{tag: r.u1()}

		switch e.tag {
		case TagUtf8:
			s, err := DecodeModifiedUTF8(r.bytes(int(r.u2())))
			if err != nil {
				r.fail(err)
			}

			e.utf8 = s
		case TagInteger, TagFloat:
			e.i32 = int32(r.u4())
		case TagLong, TagDouble:
			r.bytes(8)
			r.pool[i] = e
			i++

			continue
		case TagClass, TagString, TagMethodType, TagModule, TagPackage:
			e.a = r.u2()
		case TagFieldref, TagMethodref, TagInterfaceMethodref, TagNameAndType, TagDynamic, TagInvokeDynamic:
			e.a, e.b = r.u2(), r.u2()
		case TagMethodHandle:
			r.u1()
			e.a = r.u2()
		default:
			r.fail(errors.Newf("unknown constant tag %d at #%d", e.tag, i))
		}

		r.pool[i] = e
	}
}

func (r *reader) skipAttributes() {
	for n := r.u2(); n > 0 && r.err == nil; n-- {
		r.u2()
		r.bytes(int(r.u4()))
	}
}

func (r *reader) readMethod() Method {
	m := Method{
		Access:     r.u2(),
		Name:       r.utf8(r.u2()),
		Descriptor: r.utf8(r.u2()),
	}

	for n := r.u2(); n > 0 && r.err == nil; n-- {
		name := r.utf8(r.u2())
		length := int(r.u4())

		switch name {
		case "Code":
			m.MaxStack = int(r.u2())
			m.MaxLocals = int(r.u2())
			m.Code = r.bytes(int(r.u4()))
			r.bytes(8 * int(r.u2())) // exception table
			r.skipAttributes()
			m.Instructions = r.decodeInstructions(m.Code)
		case "Signature":
			m.Signature = r.utf8(r.u2())
		default:
			r.bytes(length)
		}
	}

	return m
}

func (r *reader) decodeInstructions(code []byte) []Instruction {
	var out []Instruction

	for pc := 0; pc < len(code) && r.err == nil; {
		op := code[pc]

		size, known := operandSize[op]
		if !known {
			r.fail(errors.Newf("unsupported opcode 0x%02x at %d", op, pc))
			break
		}

		if pc+1+size > len(code) {
			r.fail(errors.Newf("truncated instruction at %d", pc))
			break
		}

		operands := code[pc+1 : pc+1+size]
		out = append(out, Instruction{Offset: pc, Opcode: op, Operand: r.operand(op, operands)})
		pc += 1 + size
	}

	return out
}

func (r *reader) operand(op byte, operands []byte) string {
	switch op {
	case OpALoad:
		return strconv.Itoa(int(operands[0]))
	case OpLdc:
		return r.constant(uint16(operands[0]))
	case OpLdcW:
		return r.constant(binary.BigEndian.Uint16(operands))
	case OpCheckCast:
		return r.className(binary.BigEndian.Uint16(operands))
	case OpInvokeStatic, OpInvokeVirtual, OpInvokeInterface:
		return r.memberRef(binary.BigEndian.Uint16(operands))
	default:
		return ""
	}
}

func (r *reader) constant(i uint16) string {
	if int(i) >= len(r.pool) {
		r.fail(errors.Newf("constant #%d out of range", i))
		return ""
	}

	switch e := r.pool[i]; e.tag {
	case TagString:
		return strconv.Quote(r.utf8(e.a))
	case TagClass:
		return r.utf8(e.a) + ".class"
	case TagInteger:
		return strconv.Itoa(int(e.i32))
	default:
		r.fail(errors.Newf("unsupported ldc constant tag %d", e.tag))
		return ""
	}
}

func (r *reader) memberRef(i uint16) string {
	if int(i) >= len(r.pool) {
		r.fail(errors.Newf("constant #%d out of range", i))
		return ""
	}

	ref := r.pool[i]
	if ref.tag != TagMethodref && ref.tag != TagInterfaceMethodref {
		r.fail(errors.Newf("constant #%d is not a method reference", i))
		return ""
	}

	nat := r.entry(ref.b, TagNameAndType)

	var sb strings.Builder

	sb.WriteString(r.className(ref.a))
	sb.WriteByte('.')
	sb.WriteString(r.utf8(nat.a))
	sb.WriteString(r.utf8(nat.b))

	return sb.String()
}

func (r *reader) readAnnotation() Annotation {
	a := Annotation{Descriptor: r.utf8(r.u2())}

	for n := r.u2(); n > 0 && r.err == nil; n-- {
		name := r.utf8(r.u2())
		a.Elements = append(a.Elements, Element{Name: name, Value: r.readValue()})
	}

	return a
}

func (r *reader) readValue() Value {
	switch tag := r.u1(); tag {
	case 'I':
		return IntValue(r.entry(r.u2(), TagInteger).i32)
	case 's':
		return StringValue(r.utf8(r.u2()))
	case '[':
		n := int(r.u2())
		arr := make(ArrayValue, 0, n)

		for ; n > 0 && r.err == nil; n-- {
			arr = append(arr, r.readValue())
		}

		return arr
	default:
		r.fail(errors.Newf("unsupported element value tag %q", tag))
		return nil
	}
}
