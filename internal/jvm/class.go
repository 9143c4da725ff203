package jvm

import (
	"encoding/binary"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

const magic uint32 = 0xCAFEBABE

// ClassWriter assembles a class file. Methods and annotations are written in
// the order they are added, so equal inputs produce identical bytes.
type ClassWriter struct {
	pool        *ConstantPool
	version     uint16
	access      uint16
	name        string
	super       string
	sourceFile  string
	methods     []method
	signatures  map[string]struct{}
	annotations []Annotation
	err         error
}

type method struct {
	access     uint16
	name       string
	descriptor string
	signature  string
	code       *Code
}

// NewClassWriter starts a Java 8 class with the given access flags and
// internal names.
func NewClassWriter(access uint16, name, super string) *ClassWriter {
	return &ClassWriter{
		pool:       NewConstantPool(),
		version:    Java8,
		access:     access,
		name:       name,
		super:      super,
		signatures: make(map[string]struct{}),
	}
}

// Name returns the internal name of the class being written.
func (w *ClassWriter) Name() string { return w.name }

// SetSourceFile records the SourceFile attribute.
func (w *ClassWriter) SetSourceFile(name string) { w.sourceFile = name }

// AddAnnotation appends a runtime-visible class annotation.
func (w *ClassWriter) AddAnnotation(a Annotation) { w.annotations = append(w.annotations, a) }

// AddMethod emits a static method. signature is the generic Signature
// attribute and may be empty. body receives a Code whose locals are
// pre-sized from the descriptor.
func (w *ClassWriter) AddMethod(access uint16, name, descriptor, signature string, body func(*Code)) error {
	if access&AccStatic == 0 {
		return errors.Newf("method %s%s: only static methods are supported", name, descriptor)
	}

	key := name + descriptor
	if _, dup := w.signatures[key]; dup {
		return errors.Newf("duplicate method %s in %s", key, w.name)
	}

	params, _, err := SlotSizes(descriptor)
	if err != nil {
		return errors.Wrapf(err, "method %s", name)
	}

	code := newCode(w.pool, params)
	body(code)

	if err := code.Err(); err != nil {
		return errors.Wrapf(err, "method %s%s", name, descriptor)
	}

	if code.stack != 0 || (code.last != OpAReturn && code.last != OpReturn) {
		return errors.Newf("method %s%s: body must end with a return", name, descriptor)
	}

	w.signatures[key] = struct{}{}
	w.methods = append(w.methods, method{
		access:     access,
		name:       name,
		descriptor: descriptor,
		signature:  signature,
		code:       code,
	})

	return nil
}

// Bytes encodes the class file.
func (w *ClassWriter) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	// Body first: it interns every constant the header must count.
	var body []byte

	body = binary.BigEndian.AppendUint16(body, w.access)
	body = binary.BigEndian.AppendUint16(body, w.pool.Class(w.name))
	body = binary.BigEndian.AppendUint16(body, w.pool.Class(w.super))
	body = binary.BigEndian.AppendUint16(body, 0) // interfaces
	body = binary.BigEndian.AppendUint16(body, 0) // fields
	body = binary.BigEndian.AppendUint16(body, uint16(len(w.methods)))

	for _, m := range w.methods {
		body = w.appendMethod(body, m)
	}

	body = w.appendClassAttributes(body)

	if err := w.pool.Err(); err != nil {
		return nil, errors.Wrapf(err, "class %s", w.name)
	}

	out := make([]byte, 0, 10+len(body)+64*w.pool.Count())
	out = binary.BigEndian.AppendUint32(out, magic)
	out = binary.BigEndian.AppendUint16(out, 0)
	out = binary.BigEndian.AppendUint16(out, w.version)
	out = w.pool.AppendTo(out)

	return append(out, body...), nil
}

func (w *ClassWriter) appendMethod(out []byte, m method) []byte {
	out = binary.BigEndian.AppendUint16(out, m.access)
	out = binary.BigEndian.AppendUint16(out, w.pool.Utf8(m.name))
	out = binary.BigEndian.AppendUint16(out, w.pool.Utf8(m.descriptor))

	attributes := 1
	if m.signature != "" {
		attributes++
	}

	out = binary.BigEndian.AppendUint16(out, uint16(attributes))

	code := m.code.Bytes()
	out = binary.BigEndian.AppendUint16(out, w.pool.Utf8("Code"))
	out = binary.BigEndian.AppendUint32(out, uint32(12+len(code)))
	out = binary.BigEndian.AppendUint16(out, uint16(m.code.MaxStack()))
	out = binary.BigEndian.AppendUint16(out, uint16(m.code.MaxLocals()))
	out = binary.BigEndian.AppendUint32(out, uint32(len(code)))
	out = append(out, code...)
	out = binary.BigEndian.AppendUint16(out, 0) // exception table
	out = binary.BigEndian.AppendUint16(out, 0) // code attributes

	if m.signature != "" {
		out = w.appendSignature(out, m.signature)
	}

	return out
}

func (w *ClassWriter) appendSignature(out []byte, signature string) []byte {
	out = binary.BigEndian.AppendUint16(out, w.pool.Utf8("Signature"))
	out = binary.BigEndian.AppendUint32(out, 2)

	return binary.BigEndian.AppendUint16(out, w.pool.Utf8(signature))
}

func (w *ClassWriter) appendClassAttributes(out []byte) []byte {
	attributes := 0
	if w.sourceFile != "" {
		attributes++
	}

	if len(w.annotations) > 0 {
		attributes++
	}

	out = binary.BigEndian.AppendUint16(out, uint16(attributes))

	if w.sourceFile != "" {
		out = binary.BigEndian.AppendUint16(out, w.pool.Utf8("SourceFile"))
		out = binary.BigEndian.AppendUint32(out, 2)
		out = binary.BigEndian.AppendUint16(out, w.pool.Utf8(w.sourceFile))
	}

	if len(w.annotations) > 0 {
		var payload []byte

		payload = binary.BigEndian.AppendUint16(payload, uint16(len(w.annotations)))
		for _, a := range w.annotations {
			payload = a.appendTo(w.pool, payload)
		}

		out = binary.BigEndian.AppendUint16(out, w.pool.Utf8("RuntimeVisibleAnnotations"))
		out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
		out = append(out, payload...)
	}

	return out
}
