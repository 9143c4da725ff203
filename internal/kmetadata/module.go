package kmetadata

import (
	"bytes"
	"encoding/binary"
	"maps"
	"slices"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

const (
	fieldModulePackageParts         protowire.Number = 1
	fieldPackagePartsFqName         protowire.Number = 1
	fieldPackagePartsShortClassName protowire.Number = 2
)

// Module is the content of a META-INF/<name>.kotlin_module descriptor.
type Module struct {
	Version []int
	Flags   int
	Parts   []PackageParts
}

// PackageParts lists the file facades of one package.
type PackageParts struct {
	// FqName uses dots: "org.gradle.kotlin.dsl".
	FqName          string
	ShortClassNames []string
}

// ModuleOf groups internal class names ("a/b/FooKt") by package.
// Output is sorted for reproducible descriptors.
func ModuleOf(version []int, internalNames []string) *Module {
	byPackage := make(map[string][]string)

	for _, name := range internalNames {
		pkg, short := "", name
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			pkg, short = strings.ReplaceAll(name[:i], "/", "."), name[i+1:]
		}

		byPackage[pkg] = append(byPackage[pkg], short)
	}

	m := &Module{Version: version}

	for _, pkg := range slices.Sorted(maps.Keys(byPackage)) {
		names := byPackage[pkg]
		slices.Sort(names)
		m.Parts = append(m.Parts, PackageParts{FqName: pkg, ShortClassNames: slices.Compact(names)})
	}

	return m
}

// ClassNames returns the internal names of every listed facade.
func (m *Module) ClassNames() []string {
	var out []string

	for _, p := range m.Parts {
		prefix := ""
		if p.FqName != "" {
			prefix = strings.ReplaceAll(p.FqName, ".", "/") + "/"
		}

		for _, s := range p.ShortClassNames {
			out = append(out, prefix+s)
		}
	}

	return out
}

// Bytes serializes the descriptor: the version ints, a flags int for
// version 1.4 and later, then the Module message.
func (m *Module) Bytes() []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(m.Version)))
	for _, v := range m.Version {
		out = binary.BigEndian.AppendUint32(out, uint32(v))
	}

	if versionAtLeast(m.Version, 1, 4) {
		out = binary.BigEndian.AppendUint32(out, uint32(m.Flags))
	}

	for _, p := range m.Parts {
		part := protowire.AppendTag(nil, fieldPackagePartsFqName, protowire.BytesType)
		part = protowire.AppendString(part, p.FqName)

		for _, s := range p.ShortClassNames {
			part = protowire.AppendTag(part, fieldPackagePartsShortClassName, protowire.BytesType)
			part = protowire.AppendString(part, s)
		}

		out = appendMessage(out, fieldModulePackageParts, part)
	}

	return out
}

// ParseModule decodes a .kotlin_module descriptor.
func ParseModule(data []byte) (*Module, error) {
	r := bytes.NewReader(data)

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, errors.Wrap(err, "reading version length")
	}

	if int(count) > r.Len()/4 {
		return nil, errors.Newf("version length %d exceeds descriptor size", count)
	}

	m := &Module{Version: make([]int, count)}

	for i := range m.Version {
		var v int32
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return nil, errors.Wrap(err, "reading version")
		}

		m.Version[i] = int(v)
	}

	if versionAtLeast(m.Version, 1, 4) {
		var flags int32
		if err := binary.Read(r, binary.BigEndian, &flags); err != nil {
			return nil, errors.Wrap(err, "reading flags")
		}

		m.Flags = int(flags)
	}

	rest := data[len(data)-r.Len():]

	err := walk(rest, func(num protowire.Number, f field) error {
		if num != fieldModulePackageParts {
			return nil
		}

		msg, err := f.message()
		if err != nil {
			return err
		}

		var part PackageParts

		err = walk(msg, func(num protowire.Number, f field) error {
			switch num {
			case fieldPackagePartsFqName:
				part.FqName = string(f.bytes)
			case fieldPackagePartsShortClassName:
				part.ShortClassNames = append(part.ShortClassNames, string(f.bytes))
			}

			return nil
		})
		if err != nil {
			return err
		}

		m.Parts = append(m.Parts, part)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "module")
	}

	return m, nil
}

func versionAtLeast(v []int, major, minor int) bool {
	if len(v) < 2 {
		return len(v) == 1 && v[0] > major
	}

	return v[0] > major || (v[0] == major && v[1] >= minor)
}
