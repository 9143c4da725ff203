package kmetadata

import (
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
)

// AnnotationDescriptor is the type descriptor of kotlin.Metadata.
const AnnotationDescriptor = "Lkotlin/Metadata;"

// Metadata kinds.
const (
	KindClass      = 1
	KindFileFacade = 2
)

// Header is the content of a kotlin.Metadata annotation.
type Header struct {
	Kind            int
	MetadataVersion []int
	ExtraInt        int
	Data1           []string
	Data2           []string
}

// FileFacade encodes p into a file facade header.
func FileFacade(version []int, p *Package) (Header, error) {
	d1, d2, err := Encode(p)
	if err != nil {
		return Header{}, err
	}

	return Header{Kind: KindFileFacade, MetadataVersion: version, Data1: d1, Data2: d2}, nil
}

// Annotation renders h for jvm.ClassWriter.AddAnnotation.
func (h Header) Annotation() jvm.Annotation {
	a := jvm.Annotation{Descriptor: AnnotationDescriptor}

	a.Elements = append(a.Elements,
		jvm.Element{Name: "mv", Value: jvm.Ints(h.MetadataVersion...)},
		jvm.Element{Name: "k", Value: jvm.IntValue(h.Kind)},
	)

	if h.ExtraInt != 0 {
		a.Elements = append(a.Elements, jvm.Element{Name: "xi", Value: jvm.IntValue(h.ExtraInt)})
	}

	a.Elements = append(a.Elements,
		jvm.Element{Name: "d1", Value: jvm.Strings(h.Data1...)},
		jvm.Element{Name: "d2", Value: jvm.Strings(h.Data2...)},
	)

	return a
}

// HeaderOf reads the kotlin.Metadata annotation of a parsed class.
func HeaderOf(c *jvm.Class) (Header, error) {
	a, ok := c.Annotation(AnnotationDescriptor)
	if !ok {
		return Header{}, errors.Newf("class %s has no kotlin.Metadata", c.Name)
	}

	var h Header

	for _, e := range a.Elements {
		switch e.Name {
		case "k":
			v, ok := e.Value.(jvm.IntValue)
			if !ok {
				return Header{}, errors.New("k is not an int")
			}

			h.Kind = int(v)
		case "xi":
			v, ok := e.Value.(jvm.IntValue)
			if !ok {
				return Header{}, errors.New("xi is not an int")
			}

			h.ExtraInt = int(v)
		case "mv":
			arr, ok := e.Value.(jvm.ArrayValue)
			if !ok {
				return Header{}, errors.New("mv is not an array")
			}

			for _, v := range arr {
				i, ok := v.(jvm.IntValue)
				if !ok {
					return Header{}, errors.New("mv element is not an int")
				}

				h.MetadataVersion = append(h.MetadataVersion, int(i))
			}
		case "d1", "d2":
			arr, ok := e.Value.(jvm.ArrayValue)
			if !ok {
				return Header{}, errors.Newf("%s is not an array", e.Name)
			}

			strs := make([]string, 0, len(arr))

			for _, v := range arr {
				s, ok := v.(jvm.StringValue)
				if !ok {
					return Header{}, errors.Newf("%s element is not a string", e.Name)
				}

				strs = append(strs, string(s))
			}

			if e.Name == "d1" {
				h.Data1 = strs
			} else {
				h.Data2 = strs
			}
		}
	}

	return h, nil
}

// Package decodes the declarations of a file facade header.
func (h Header) Package() (*Package, error) {
	if h.Kind != KindFileFacade {
		return nil, errors.Newf("metadata kind %d is not a file facade", h.Kind)
	}

	return DecodePackage(h.Data1, h.Data2)
}
