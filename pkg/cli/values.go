package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// valuesDocument is the mapping form of a values file:
//
//	values:
//	  - alice
//	  - bob
type valuesDocument struct {
	Values []string `yaml:"values"`
}

// ReadValues reads candidate values from a YAML file holding either a plain
// sequence of strings or a mapping with a "values" sequence. A path of "-"
// reads from stdin.
func ReadValues(path string, stdin io.Reader) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Join(ErrReadingValues, err)
	}
	return parseValues(data)
}

func parseValues(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Join(ErrReadingValues, err)
	}
	// Empty document.
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var values []string
		if err := root.Decode(&values); err != nil {
			return nil, errors.Join(ErrReadingValues, err)
		}
		return values, nil
	case yaml.MappingNode:
		var doc valuesDocument
		if err := root.Decode(&doc); err != nil {
			return nil, errors.Join(ErrReadingValues, err)
		}
		return doc.Values, nil
	default:
		return nil, errors.Join(ErrReadingValues, fmt.Errorf("expected a sequence or a mapping, got %s", kindName(root.Kind)))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
