package parallax

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnboundSink is returned by LoadEffect when a sink names no effect.
	ErrUnboundSink = errors.New("parallax: sink names no effect")

	// ErrDuplicateName is returned by LoadEffect when two effects share a name.
	ErrDuplicateName = errors.New("parallax: duplicate effect name")
)

// effectDoc is the YAML form of an effect tree node.
//
//	name: showInfo
//	from: 0
//	to: 1
//	children:
//	  - name: photoInfoHeight
//	    focus: [0.25, 1]
//	    from: 0
//	    to: 128
//	    curve: easeInOut
type effectDoc struct {
	Name     string      `yaml:"name"`
	From     *float64    `yaml:"from"`
	To       *float64    `yaml:"to"`
	Curve    string      `yaml:"curve"`
	Times    float64     `yaml:"times"`
	Clamped  bool        `yaml:"clamped"`
	Focus    []float64   `yaml:"focus"`
	Debug    bool        `yaml:"debug"`
	Children []effectDoc `yaml:"children"`
}

// LoadEffect parses a YAML effect tree and binds sinks to the effects they
// name: sinks["slide"] becomes the OnChange of the effect named "slide".
// Unknown YAML fields are rejected. Every node needs from and to; focus, when
// present, is a two-element window within [0, 1] and is not allowed on the
// root; curve is any name accepted
// by CurveNamed.
func LoadEffect[T Float](yamlData []byte, sinks map[string]func(T)) (*Effect[T], error) {
	var doc effectDoc
	dec := yaml.NewDecoder(bytes.NewReader(yamlData))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse effect: %w", err)
	}

	if doc.Focus != nil {
		return nil, fmt.Errorf("%w: root effect %q cannot have a focus window",
			ErrSubintervalOutOfRange, doc.Name)
	}

	seen := make(map[string]bool)
	root, err := buildEffect[T](&doc, seen)
	if err != nil {
		return nil, err
	}

	for name, sink := range sinks {
		e := root.Find(name)
		if e == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnboundSink, name)
		}
		e.OnChange = sink
	}
	return root, nil
}

func buildEffect[T Float](doc *effectDoc, seen map[string]bool) (*Effect[T], error) {
	if doc.Name != "" {
		if seen[doc.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, doc.Name)
		}
		seen[doc.Name] = true
	}
	if doc.From == nil || doc.To == nil {
		return nil, fmt.Errorf("%w: effect %q needs from and to", ErrInvalidInterval, doc.Name)
	}
	iv, err := NewInterval(T(*doc.From), T(*doc.To))
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", doc.Name, err)
	}
	curve, err := CurveNamed[T](doc.Curve, doc.Times)
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", doc.Name, err)
	}

	e := NewEffect(doc.Name, iv)
	e.Curve = curve
	e.Clamped = doc.Clamped
	if doc.Debug {
		AddDebugEffect(e, doc.Name)
	}

	for i := range doc.Children {
		cd := &doc.Children[i]
		child, err := buildEffect[T](cd, seen)
		if err != nil {
			return nil, err
		}
		if cd.Focus == nil {
			e.AddChild(child)
			continue
		}
		if len(cd.Focus) != 2 {
			return nil, fmt.Errorf("%w: focus of %q needs two values, got %d",
				ErrInvalidInterval, cd.Name, len(cd.Focus))
		}
		sub, err := NewInterval(T(cd.Focus[0]), T(cd.Focus[1]))
		if err != nil {
			return nil, fmt.Errorf("focus of %q: %w", cd.Name, err)
		}
		if err := e.AddChildFocused(child, sub); err != nil {
			return nil, err
		}
	}
	return e, nil
}
