package jvm

import (
	"encoding/binary"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// Code builds the instruction stream of one method and tracks the operand
// stack depth so max_stack never has to be supplied by hand.
type Code struct {
	pool      *ConstantPool
	code      []byte
	stack     int
	maxStack  int
	maxLocals int
	last      byte
	err       error
}

func newCode(pool *ConstantPool, paramSlots int) *Code {
	return &Code{pool: pool, maxLocals: paramSlots}
}

// Err returns the first error recorded while emitting.
func (c *Code) Err() error { return c.err }

// Bytes returns the instruction stream.
func (c *Code) Bytes() []byte { return c.code }

// MaxStack returns the deepest operand stack seen.
func (c *Code) MaxStack() int { return c.maxStack }

// MaxLocals returns the number of local variable slots used.
func (c *Code) MaxLocals() int { return c.maxLocals }

func (c *Code) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Code) adjust(pop, push int) {
	c.stack -= pop
	if c.stack < 0 {
		c.fail(errors.Newf("operand stack underflow at offset %d", len(c.code)))
		c.stack = 0
	}

	c.stack += push
	if c.stack > c.maxStack {
		c.maxStack = c.stack
	}
}

func (c *Code) op(op byte, operands ...byte) {
	c.last = op
	c.code = append(c.code, op)
	c.code = append(c.code, operands...)
}

func (c *Code) u2(op byte, v uint16) {
	c.last = op
	c.code = binary.BigEndian.AppendUint16(append(c.code, op), v)
}

// ALoad pushes reference local i.
func (c *Code) ALoad(i int) {
	switch {
	case i < 0 || i > 0xFF:
		c.fail(errors.Newf("local index %d out of range", i))
		return
	case i <= 3:
		c.op(OpALoad0 + byte(i))
	default:
		c.op(OpALoad, byte(i))
	}

	if i+1 > c.maxLocals {
		c.maxLocals = i + 1
	}

	c.adjust(0, 1)
}

// AConstNull pushes null.
func (c *Code) AConstNull() {
	c.op(OpAConstNull)
	c.adjust(0, 1)
}

// LdcString pushes a string constant.
func (c *Code) LdcString(s string) {
	c.ldc(c.pool.String(s))
}

// LdcClass pushes a class literal.
func (c *Code) LdcClass(internalName string) {
	c.ldc(c.pool.Class(internalName))
}

func (c *Code) ldc(index uint16) {
	if index <= 0xFF {
		c.op(OpLdc, byte(index))
	} else {
		c.u2(OpLdcW, index)
	}

	c.adjust(0, 1)
}

// CheckCast narrows the reference on top of the stack.
func (c *Code) CheckCast(internalName string) {
	c.u2(OpCheckCast, c.pool.Class(internalName))
	c.adjust(1, 1)
}

// Pop discards the top of the stack.
func (c *Code) Pop() {
	c.op(OpPop)
	c.adjust(1, 0)
}

// InvokeStatic calls a static method.
func (c *Code) InvokeStatic(owner, name, descriptor string) {
	c.u2(OpInvokeStatic, c.pool.Methodref(owner, name, descriptor))
	c.invoked(descriptor, 0)
}

// InvokeVirtual calls an instance method on a class.
func (c *Code) InvokeVirtual(owner, name, descriptor string) {
	c.u2(OpInvokeVirtual, c.pool.Methodref(owner, name, descriptor))
	c.invoked(descriptor, 1)
}

// InvokeInterface calls an interface method.
func (c *Code) InvokeInterface(owner, name, descriptor string) {
	params, _, err := SlotSizes(descriptor)
	if err != nil {
		c.fail(err)
		return
	}

	c.u2(OpInvokeInterface, c.pool.InterfaceMethodref(owner, name, descriptor))
	c.code = append(c.code, byte(params+1), 0)
	c.invoked(descriptor, 1)
}

func (c *Code) invoked(descriptor string, receiver int) {
	params, ret, err := SlotSizes(descriptor)
	if err != nil {
		c.fail(err)
		return
	}

	c.adjust(params+receiver, ret)
}

// AReturn returns the reference on top of the stack.
func (c *Code) AReturn() {
	c.op(OpAReturn)
	c.adjust(1, 0)
}

// Return returns from a void method.
func (c *Code) Return() {
	c.op(OpReturn)
}
