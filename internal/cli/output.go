package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"system-errors/pkg/syserr"
)

// errorRecord is the rendered form of one resolved code or kind.
type errorRecord struct {
	Code    string   `yaml:"code,omitempty" json:"code,omitempty"`
	Codes   []string `yaml:"codes,omitempty" json:"codes,omitempty"`
	Kind    string   `yaml:"kind" json:"kind"`
	Message string   `yaml:"message" json:"message"`
	Known   bool     `yaml:"known" json:"known"`
}

func recordFor(input string, err *syserr.Error) errorRecord {
	return errorRecord{
		Code:    input,
		Kind:    err.Name(),
		Message: err.Message(),
		Known:   err.Kind() != syserr.KindUnknown,
	}
}

func kindRecord(kind syserr.Kind) errorRecord {
	return errorRecord{
		Codes:   syserr.CodesFor(kind),
		Kind:    kind.Name(),
		Message: kind.Message(),
		Known:   kind != syserr.KindUnknown,
	}
}

// render writes records in the requested format. Tables are drawn with a
// border when boxed is set.
func render(w io.Writer, format string, records []errorRecord, boxed bool) error {
	var err error
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(records); err == nil {
			err = enc.Close()
		}
	case OutputJSON:
		var data []byte
		data, err = json.MarshalIndent(records, "", "  ")
		if err == nil {
			_, err = fmt.Fprintln(w, string(data))
		}
	case OutputTable:
		err = writeTable(w, tableData(records), boxed)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

func tableData(records []errorRecord) [][]string {
	data := [][]string{{"Code", "Kind", "Message"}}
	for _, r := range records {
		code := r.Code
		if len(r.Codes) > 0 {
			code = strings.Join(r.Codes, ", ")
		}
		kind := Green(r.Kind)
		if !r.Known {
			kind = Yellow(r.Kind)
		}
		data = append(data, []string{Cyan(code), kind, r.Message})
	}
	return data
}
