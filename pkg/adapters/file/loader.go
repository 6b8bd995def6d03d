// Package file loads and exports menu graphs as YAML or JSON documents.
package file

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/minerva/pkg/catalog"
	"github.com/aretw0/minerva/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is the on-disk representation of a menu.
type Document struct {
	Start string        `yaml:"start" json:"start"`
	Nodes []domain.Node `yaml:"nodes" json:"nodes"`
}

// Loader implements ports.GraphLoader over a parsed Document.
type Loader struct {
	path string
	doc  Document
}

// Load reads a graph document from path. Files ending in .json are decoded as
// JSON, anything else as YAML. A missing start defaults to "inicio".
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &Loader{path: path, doc: doc}, nil
}

// Parse decodes a graph document.
func Parse(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse graph json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse graph yaml: %w", err)
		}
	}

	if doc.Start == "" {
		doc.Start = catalog.StartNodeID
	}
	if len(doc.Nodes) == 0 {
		return Document{}, fmt.Errorf("graph document has no nodes")
	}
	for i := range doc.Nodes {
		if doc.Nodes[i].Options == nil {
			doc.Nodes[i].Options = map[string]string{}
		}
	}
	return doc, nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Path returns the file the graph was read from.
func (l *Loader) Path() string {
	return l.path
}

// LoadNodes returns copies of the nodes in the document.
func (l *Loader) LoadNodes() ([]domain.Node, error) {
	out := make([]domain.Node, len(l.doc.Nodes))
	for i, n := range l.doc.Nodes {
		out[i] = n.Clone()
	}
	return out, nil
}

// StartNodeID returns the document start node.
func (l *Loader) StartNodeID() string {
	return l.doc.Start
}

// Export writes start and nodes as a graph document.
func Export(w io.Writer, format Format, start string, nodes []domain.Node) error {
	doc := Document{Start: start, Nodes: nodes}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode graph json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode graph yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported graph format %q", format)
	}
}
