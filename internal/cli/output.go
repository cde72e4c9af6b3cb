package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
	textFormat = "text"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat, textFormat}
)

func validateOutput(output string) error {
	if len(output) > 0 && !funk.Contains(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// printStructured writes v as json or yaml. It reports false for any other format.
func printStructured(w io.Writer, output string, v interface{}) (bool, error) {
	switch output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("marshalling resource: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", string(marshalled))
		return true, err
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("marshalling resource: %w", err)
		}
		_, err = fmt.Fprint(w, string(marshalled))
		return true, err
	default:
		return false, nil
	}
}
