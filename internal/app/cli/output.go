package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// write renders v in the format chosen by --output.
func (s *session) write(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	switch format := s.v.GetString("output"); format {
	case "json", "":
		return writeJSON(out, v)
	case "yaml", "yml":
		return writeYAML(out, v)
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML emits v as block-style YAML keyed by its JSON field names, so
// both formats share one naming scheme.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("convert to yaml: %w", err)
	}
	clearStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// clearStyle drops the flow and quoting styles the JSON source implies.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
