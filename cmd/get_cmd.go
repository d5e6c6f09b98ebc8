package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Section      string `json:"section"`       // 只在该 section 中查找
	Key          string `json:"key"`           // 要查找的 key
	Type         string `json:"type"`          // 值的转换类型
	ListKeys     bool   `json:"list_keys"`     // 列出 key 名称
	ListSections bool   `json:"list_sections"` // 列出 section 名称
}

var getParams *GetParams

var valueTypes = []string{"string", "int", "uint", "float", "bool", "csv"}

var getCmd = &cobra.Command{
	Use:   "get [FILE]",
	Short: "Print values, key names or section names",
	Long: `Print the value of a key, every value of a section, key names or section names.
Without -k every value is printed, limited to the section given with -s.`,
	Args: cobra.MaximumNArgs(1),
	RunE: getRun,
}

func init() {
	getParams = &GetParams{}
	getCmd.Flags().StringVarP(&getParams.Section, "section", "s", "", "look only in this section")
	getCmd.Flags().StringVarP(&getParams.Key, "key", "k", "", "print the value of this key only")
	getCmd.Flags().StringVarP(&getParams.Type, "type", "t", "string", "convert the value: "+strings.Join(valueTypes, ", "))
	getCmd.Flags().BoolVar(&getParams.ListKeys, "list-keys", false, "list key names, limited to -s when given")
	getCmd.Flags().BoolVar(&getParams.ListSections, "list-sections", false, "list section names")
}

func getRun(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cmd, args, opts)
	if err != nil {
		return err
	}
	defer doc.Close()

	printWarnings(cmd, doc)
	out := cmd.OutOrStdout()

	switch {
	case getParams.ListSections:
		for _, name := range doc.SectionNames() {
			if name != ini.GlobalSection {
				fmt.Fprintln(out, name)
			}
		}
		return nil

	case getParams.ListKeys:
		return printList(cmd, doc, doc.SectionKeyNames, doc.KeyNames)

	case getParams.Key != "":
		value, err := lookupValue(doc, getParams.Section, getParams.Key, getParams.Type)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	}

	return printList(cmd, doc, doc.SectionKeyValues, doc.KeyValues)
}

// printList 打印 section 内或整个文档的名称/值列表
func printList(cmd *cobra.Command, doc *ini.Document, inSection func(string) (*ini.List, error), all func() *ini.List) error {
	var list *ini.List
	if getParams.Section != "" {
		l, err := inSection(getParams.Section)
		if err != nil {
			return err
		}
		list = l
	} else {
		list = all()
	}
	defer doc.Release(list)

	for i := 0; i < list.Len(); i++ {
		fmt.Fprintln(cmd.OutOrStdout(), list.At(i))
	}
	return nil
}

// lookupValue 查找 key 并按 typ 转换为文本输出；section 为空时在整个文档中查找
func lookupValue(doc *ini.Document, section, key, typ string) (string, error) {
	scoped := section != ""

	switch typ {
	case "", "string":
		if scoped {
			return doc.SectionValue(section, key)
		}
		return doc.Value(key)

	case "int":
		var v int64
		var err error
		if scoped {
			v, err = doc.SectionInt(section, key)
		} else {
			v, err = doc.Int(key)
		}
		return strconv.FormatInt(v, 10), err

	case "uint":
		var v uint64
		var err error
		if scoped {
			v, err = doc.SectionUint(section, key)
		} else {
			v, err = doc.Uint(key)
		}
		return strconv.FormatUint(v, 10), err

	case "float":
		var v float64
		var err error
		if scoped {
			v, err = doc.SectionFloat(section, key)
		} else {
			v, err = doc.Float(key)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), err

	case "bool":
		var v ini.Bool
		var err error
		if scoped {
			v, err = doc.SectionBool(section, key)
		} else {
			v, err = doc.Bool(key)
		}
		return v.String(), err

	case "csv":
		var l *ini.List
		var err error
		if scoped {
			l, err = doc.SectionCSV(section, key)
		} else {
			l, err = doc.CSV(key)
		}
		if err != nil {
			return "", err
		}
		defer doc.Release(l)
		return strings.Join(l.Strings(), "\n"), nil
	}

	return "", fmt.Errorf("unknown type %q, want one of %s", typ, strings.Join(valueTypes, ", "))
}
