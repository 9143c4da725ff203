package jvm

import (
	"strings"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// MethodDescriptor renders "(params)ret" from field descriptors.
func MethodDescriptor(ret string, params ...string) string {
	return "(" + strings.Join(params, "") + ")" + ret
}

// ObjectDescriptor returns "L<internalName>;".
func ObjectDescriptor(internalName string) string {
	return "L" + internalName + ";"
}

// Common descriptors.
const (
	VoidDescriptor = "V"
	IntDescriptor  = "I"
	ObjectInternal = "java/lang/Object"
	StringInternal = "java/lang/String"
	ClassInternal  = "java/lang/Class"
	ObjectDesc     = "Ljava/lang/Object;"
	StringDesc     = "Ljava/lang/String;"
	ClassDesc      = "Ljava/lang/Class;"
)

// SlotSizes returns the local-variable slots taken by the parameters of a
// method descriptor and the operand stack size of its return value.
func SlotSizes(descriptor string) (params, ret int, err error) {
	if !strings.HasPrefix(descriptor, "(") {
		return 0, 0, errors.Newf("malformed method descriptor %q", descriptor)
	}

	i := 1
	for i < len(descriptor) && descriptor[i] != ')' {
		size, next, err := fieldType(descriptor, i)
		if err != nil {
			return 0, 0, err
		}

		params += size
		i = next
	}

	if i >= len(descriptor) {
		return 0, 0, errors.Newf("unterminated parameters in %q", descriptor)
	}

	i++

	if i < len(descriptor) && descriptor[i] == 'V' && i == len(descriptor)-1 {
		return params, 0, nil
	}

	ret, next, err := fieldType(descriptor, i)
	if err != nil {
		return 0, 0, err
	}

	if next != len(descriptor) {
		return 0, 0, errors.Newf("trailing characters in %q", descriptor)
	}

	return params, ret, nil
}

// fieldType scans one field descriptor starting at i.
func fieldType(d string, i int) (size, next int, err error) {
	if i >= len(d) {
		return 0, 0, errors.Newf("truncated descriptor %q", d)
	}

	switch d[i] {
	case 'B', 'C', 'F', 'I', 'S', 'Z':
		return 1, i + 1, nil
	case 'J', 'D':
		return 2, i + 1, nil
	case 'L':
		end := strings.IndexByte(d[i:], ';')
		if end < 0 {
			return 0, 0, errors.Newf("unterminated class type in %q", d)
		}

		return 1, i + end + 1, nil
	case '[':
		j := i
		for j < len(d) && d[j] == '[' {
			j++
		}

		_, next, err := fieldType(d, j)

		return 1, next, err
	default:
		return 0, 0, errors.Newf("unexpected %q in descriptor %q", d[i], d)
	}
}
