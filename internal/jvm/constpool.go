package jvm

import (
	"encoding/binary"
	"strconv"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// Constant pool tags.
const (
	TagUtf8               byte = 1
	TagInteger            byte = 3
	TagFloat              byte = 4
	TagLong               byte = 5
	TagDouble             byte = 6
	TagClass              byte = 7
	TagString             byte = 8
	TagFieldref           byte = 9
	TagMethodref          byte = 10
	TagInterfaceMethodref byte = 11
	TagNameAndType        byte = 12
	TagMethodHandle       byte = 15
	TagMethodType         byte = 16
	TagDynamic            byte = 17
	TagInvokeDynamic      byte = 18
	TagModule             byte = 19
	TagPackage            byte = 20
)

const maxPoolSize = 0xFFFF

// ErrPoolOverflow is reported when a class needs more than 65534 constants.
var ErrPoolOverflow = errors.New("constant pool overflow")

// ConstantPool accumulates deduplicated constants in insertion order.
// Index 0 is reserved by the format, so the first entry gets index 1.
type ConstantPool struct {
	entries [][]byte
	index   map[string]uint16
	err     error
}

// NewConstantPool returns an empty pool.
func NewConstantPool() *ConstantPool {
	return &ConstantPool{index: make(map[string]uint16)}
}

// Err returns the first error encountered while adding constants.
func (p *ConstantPool) Err() error { return p.err }

// Count returns the constant_pool_count value: number of entries plus one.
func (p *ConstantPool) Count() int { return len(p.entries) + 1 }

func (p *ConstantPool) intern(key string, entry []byte) uint16 {
	if i, ok := p.index[key]; ok {
		return i
	}

	if len(p.entries)+1 >= maxPoolSize {
		if p.err == nil {
			p.err = ErrPoolOverflow
		}

		return 0
	}

	p.entries = append(p.entries, entry)
	i := uint16(len(p.entries))
	p.index[key] = i

	return i
}

// Utf8 adds a CONSTANT_Utf8 entry.
func (p *ConstantPool) Utf8(s string) uint16 {
	if n := ModifiedUTF8Len(s); n > 0xFFFF {
		if p.err == nil {
			p.err = errors.Newf("string constant of %d bytes exceeds 65535", n)
		}

		return 0
	}

	encoded := EncodeModifiedUTF8(s)

	entry := make([]byte, 0, 3+len(encoded))
	entry = append(entry, TagUtf8)
	entry = binary.BigEndian.AppendUint16(entry, uint16(len(encoded)))
	entry = append(entry, encoded...)

	return p.intern("U"+s, entry)
}

// Integer adds a CONSTANT_Integer entry.
func (p *ConstantPool) Integer(v int32) uint16 {
	entry := binary.BigEndian.AppendUint32([]byte{TagInteger}, uint32(v))

	return p.intern("I"+strconv.FormatInt(int64(v), 10), entry)
}

// Class adds a CONSTANT_Class entry for an internal name.
func (p *ConstantPool) Class(internalName string) uint16 {
	return p.ref1("C", TagClass, p.Utf8(internalName), internalName)
}

// String adds a CONSTANT_String entry.
func (p *ConstantPool) String(s string) uint16 {
	return p.ref1("S", TagString, p.Utf8(s), s)
}

// NameAndType adds a CONSTANT_NameAndType entry.
func (p *ConstantPool) NameAndType(name, descriptor string) uint16 {
	return p.ref2("N", TagNameAndType, p.Utf8(name), p.Utf8(descriptor), name+" "+descriptor)
}

// Methodref adds a CONSTANT_Methodref entry.
func (p *ConstantPool) Methodref(owner, name, descriptor string) uint16 {
	return p.ref2("M", TagMethodref, p.Class(owner), p.NameAndType(name, descriptor),
		owner+"."+name+descriptor)
}

// InterfaceMethodref adds a CONSTANT_InterfaceMethodref entry.
func (p *ConstantPool) InterfaceMethodref(owner, name, descriptor string) uint16 {
	return p.ref2("T", TagInterfaceMethodref, p.Class(owner), p.NameAndType(name, descriptor),
		owner+"."+name+descriptor)
}

func (p *ConstantPool) ref1(prefix string, tag byte, a uint16, key string) uint16 {
	entry := binary.BigEndian.AppendUint16([]byte{tag}, a)

	return p.intern(prefix+key, entry)
}

func (p *ConstantPool) ref2(prefix string, tag byte, a, b uint16, key string) uint16 {
	entry := binary.BigEndian.AppendUint16([]byte{tag}, a)
	entry = binary.BigEndian.AppendUint16(entry, b)

	return p.intern(prefix+key, entry)
}

// AppendTo appends constant_pool_count and every entry to out.
func (p *ConstantPool) AppendTo(out []byte) []byte {
	out = binary.BigEndian.AppendUint16(out, uint16(p.Count()))
	for _, e := range p.entries {
		out = append(out, e...)
	}

	return out
}
