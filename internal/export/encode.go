package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCBOR    Format = "cbor"
	FormatSummary Format = "summary"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR, FormatSummary}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: must be one of %v", s, Formats)
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("failed to create CBOR encoder: %w", err)
		}
		return encMode.NewEncoder(w).Encode(doc)
	case FormatSummary:
		return writeSummary(w, doc)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// writeSummary prints one row per actor property with its event count.
func writeSummary(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCRIPT\tACTOR\tPROPERTY\tEVENTS")
	for _, s := range doc.Scripts {
		if s.Error != "" {
			fmt.Fprintf(tw, "%s\t-\t-\terror: %s\n", s.Path, s.Error)
			continue
		}
		if len(s.Actors) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t0\n", s.Path)
			continue
		}
		for _, a := range s.Actors {
			counts := a.Properties.count()
			if len(counts) == 0 {
				fmt.Fprintf(tw, "%s\t%s\t-\t0\n", s.Path, a.Name)
				continue
			}
			for _, c := range counts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Path, a.Name, c.name, c.events)
			}
		}
	}
	return tw.Flush()
}
