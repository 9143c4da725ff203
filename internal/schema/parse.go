package schema

import (
	"strings"
	"unicode"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// ParseType parses the type notation described in the package documentation.
func ParseType(notation string) (TypeOf, error) {
	p := &typeParser{src: notation}

	t, err := p.parseType()
	if err != nil {
		return TypeOf{}, err
	}

	p.skipSpace()

	if !p.eof() {
		return TypeOf{}, p.errorf("unexpected %q", p.src[p.pos])
	}

	if t.IsStar() {
		return TypeOf{}, p.errorf("star projection is only valid as a type argument")
	}

	return t, nil
}

// MustParseType is like ParseType but panics on malformed notation.
func MustParseType(notation string) TypeOf {
	t, err := ParseType(notation)
	if err != nil {
		panic(err)
	}

	return t
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) eof() bool { return p.pos >= len(p.src) }

func (p *typeParser) skipSpace() {
	for !p.eof() && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) errorf(format string, args ...any) error {
	err := errors.Newf("type %q at offset %d: "+format, append([]any{p.src, p.pos}, args...)...)

	return errors.WithHint(err, `expected notation like "java.util.Map<java.lang.String, *>"`)
}

func (p *typeParser) parseType() (TypeOf, error) {
	p.skipSpace()

	if !p.eof() && p.src[p.pos] == '*' {
		p.pos++

		return Star(), nil
	}

	start := p.pos
	for !p.eof() && isNameByte(p.src[p.pos]) {
		p.pos++
	}

	name := p.src[start:p.pos]
	if name == "" {
		return TypeOf{}, p.errorf("missing class name")
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return TypeOf{}, p.errorf("malformed class name %q", name)
	}

	if r := rune(name[0]); unicode.IsDigit(r) {
		return TypeOf{}, p.errorf("class name %q starts with a digit", name)
	}

	t := TypeOf{Class: name}

	p.skipSpace()

	if !p.eof() && p.src[p.pos] == '<' {
		p.pos++

		for {
			arg, err := p.parseType()
			if err != nil {
				return TypeOf{}, err
			}

			t.Arguments = append(t.Arguments, arg)

			p.skipSpace()

			if p.eof() {
				return TypeOf{}, p.errorf("unterminated type arguments")
			}

			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}

			if p.src[p.pos] == '>' {
				p.pos++
				break
			}

			return TypeOf{}, p.errorf("unexpected %q in type arguments", p.src[p.pos])
		}

		p.skipSpace()
	}

	if !p.eof() && p.src[p.pos] == '?' {
		p.pos++
		t.Nullable = true
	}

	return t, nil
}

func isNameByte(b byte) bool {
	return b == '.' || b == '$' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
