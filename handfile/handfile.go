// Package handfile reads YAML files listing the hands to score.
//
//	hands:
//	  - name: wheel
//	    cards: [AS, 2H, 3D, 4C, 5S]
package handfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stdin is the path that makes Load read standard input.
const Stdin = "-"

var ErrNoHands = errors.New("hand file lists no hands")

// Entry is one named hand. Cards are left as mnemonics; validating them is
// the scorer's job so that a bad entry does not reject the whole file.
type Entry struct {
	Name  string   `yaml:"name" json:"name"`
	Cards []string `yaml:"cards" json:"cards"`
}

// File is the decoded content of a hand file.
type File struct {
	Hands []Entry `yaml:"hands"`
}

// Decode parses a hand file. Entries without a name are named "hand-<n>".
// A hand may also be written as a single space separated string.
func Decode(r io.Reader) (*File, error) {
	var raw struct {
		Hands []yaml.Node `yaml:"hands"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHands
		}
		return nil, fmt.Errorf("decode hand file: %w", err)
	}
	if len(raw.Hands) == 0 {
		return nil, ErrNoHands
	}

	f := &File{Hands: make([]Entry, 0, len(raw.Hands))}
	for i, node := range raw.Hands {
		entry, err := decodeEntry(&node)
		if err != nil {
			return nil, fmt.Errorf("hand %d (line %d): %w", i+1, node.Line, err)
		}
		if entry.Name == "" {
			entry.Name = fmt.Sprintf("hand-%d", i+1)
		}
		f.Hands = append(f.Hands, entry)
	}
	return f, nil
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Entry{Cards: strings.Fields(node.Value)}, nil
	case yaml.MappingNode:
	default:
		return Entry{}, fmt.Errorf("expected a mapping or a string, got %s", node.ShortTag())
	}

	var e Entry
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			if err := value.Decode(&e.Name); err != nil {
				return Entry{}, err
			}
		case "cards":
			cards, err := decodeCards(value)
			if err != nil {
				return Entry{}, err
			}
			e.Cards = cards
		default:
			return Entry{}, fmt.Errorf("field %s not found in type handfile.Entry", key.Value)
		}
	}
	return e, nil
}

// decodeCards accepts a list of mnemonics, a list holding one space separated
// string, or that string alone.
func decodeCards(node *yaml.Node) ([]string, error) {
	if node.Kind == yaml.ScalarNode {
		return strings.Fields(node.Value), nil
	}
	var cards []string
	if err := node.Decode(&cards); err != nil {
		return nil, err
	}
	if len(cards) == 1 {
		cards = strings.Fields(cards[0])
	}
	return cards, nil
}

// Load reads a hand file from path, or from standard input when path is "-".
func Load(path string) (*File, error) {
	if path == Stdin {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the file back as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}
