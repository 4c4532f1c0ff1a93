// Package fixture reads section trees from YAML snapshot files.
//
//	sections:
//	  - id: fruits
//	    header: {id: title, content: "Fruits"}
//	    items:
//	      - {id: apple, content: "Apple"}
//	      - {id: pear, content: {name: "Pear", price: 3}}
package fixture

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/pkg/component"
	"github.com/vango-dev/carbon/pkg/diff"
	"github.com/vango-dev/carbon/pkg/section"
)

// Item is the component produced for every node in a snapshot file.
type Item struct {
	Key     string
	Content any
}

// ID implements component.Identifiable.
func (i Item) ID() any {
	return i.Key
}

// ContentEquals implements component.ContentEquatable.
func (i Item) ContentEquals(other component.Component) bool {
	o, ok := other.(Item)
	return ok && reflect.DeepEqual(i.Content, o.Content)
}

type file struct {
	Sections []sectionDoc `yaml:"sections"`
}

type sectionDoc struct {
	ID     string    `yaml:"id"`
	Header *nodeDoc  `yaml:"header,omitempty"`
	Footer *nodeDoc  `yaml:"footer,omitempty"`
	Items  []nodeDoc `yaml:"items"`
}

type nodeDoc struct {
	ID      string `yaml:"id"`
	Content any    `yaml:"content"`
}

// Load reads a snapshot file.
func Load(path string) (section.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E301").Wrap(err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes a snapshot document.
func Parse(data []byte) (section.Tree, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.New("E301").Wrap(err)
	}

	tree := make(section.Tree, 0, len(f.Sections))
	for si, s := range f.Sections {
		if s.ID == "" {
			return nil, errors.New("E302").WithDetail(fmt.Sprintf("Section %d has no id.", si))
		}
		sec := section.Section{ID: s.ID}
		if s.Header != nil {
			n, err := s.Header.node(fmt.Sprintf("header of section %q", s.ID))
			if err != nil {
				return nil, err
			}
			sec.Header = n
		}
		if s.Footer != nil {
			n, err := s.Footer.node(fmt.Sprintf("footer of section %q", s.ID))
			if err != nil {
				return nil, err
			}
			sec.Footer = n
		}
		for ii, item := range s.Items {
			n, err := item.node(fmt.Sprintf("item %d of section %q", ii, s.ID))
			if err != nil {
				return nil, err
			}
			sec.Items = append(sec.Items, n)
		}
		tree = append(tree, sec)
	}
	return tree, nil
}

func (d nodeDoc) node(where string) (*component.Node, error) {
	if d.ID == "" {
		return nil, errors.New("E302").WithDetail(fmt.Sprintf("The %s has no id.", where))
	}
	return component.NewNode(Item{Key: d.ID, Content: d.Content}), nil
}

// OpDoc is the YAML form of one edit operation.
type OpDoc struct {
	Op   string `yaml:"op"`
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// MarshalChangeset encodes a changeset as a YAML operation list.
func MarshalChangeset(c diff.Changeset) ([]byte, error) {
	ops := c.Ops()
	docs := make([]OpDoc, 0, len(ops))
	for _, op := range ops {
		doc := OpDoc{Op: op.Kind.String()}
		switch op.Kind {
		case diff.OpInsertSection:
			doc.To = fmt.Sprint(op.To.Section)
		case diff.OpMoveSection:
			doc.From, doc.To = fmt.Sprint(op.From.Section), fmt.Sprint(op.To.Section)
		case diff.OpDeleteSection, diff.OpUpdateSection:
			doc.From = fmt.Sprint(op.From.Section)
		case diff.OpInsertItem:
			doc.To = op.To.String()
		case diff.OpMoveItem:
			doc.From, doc.To = op.From.String(), op.To.String()
		default:
			doc.From = op.From.String()
		}
		docs = append(docs, doc)
	}
	return yaml.Marshal(docs)
}
