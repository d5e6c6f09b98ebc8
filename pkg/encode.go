package pkg

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Format 导出格式
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats 所有支持的导出格式
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// ParseFormat 解析格式名称，大小写不敏感
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q", name)
}

// Encode 将 section -> key -> value 写成指定格式
func Encode(w io.Writer, format Format, sections map[string]map[string]string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(sections)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sections); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		return encodeJSON(w, sections)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func encodeJSON(w io.Writer, sections map[string]map[string]string) error {
	fields := make(map[string]any, len(sections))
	for name, keys := range sections {
		m := make(map[string]any, len(keys))
		for k, v := range keys {
			m[k] = v
		}
		fields[name] = m
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
