package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
	"github.com/spf13/cobra"
)

// stdinName 从标准输入读取时文档使用的名称
const stdinName = "stdin"

var errNoInput = errors.New("no input: pass a FILE or pipe INI data to standard input")

// loadDocument 从文件或标准输入加载 INI 文档
func loadDocument(cmd *cobra.Command, args []string, opts ini.Options) (*ini.Document, error) {
	start := time.Now()

	var doc *ini.Document
	if len(args) > 0 {
		path := args[0]
		exist, err := pkg.CheckFileExist(path)
		if err != nil {
			return nil, fmt.Errorf("check file exist: %w", err)
		}
		if !exist {
			return nil, fmt.Errorf("input file %s does not exist", path)
		}
		doc, err = ini.LoadFile(path, opts, nil)
		if err != nil {
			return nil, err
		}
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && !pkg.IsPiped(f) {
			return nil, errNoInput
		}
		data, err := pkg.ReadInput(in)
		if err != nil {
			return nil, err
		}
		doc = ini.Load(data, opts, stdinName, nil)
	}

	logger.Debug("loaded ini",
		"name", doc.Name(),
		"sections", len(doc.SectionNames()),
		"keys", doc.Len(),
		"warnings", len(doc.Warnings()),
		"elapsed", time.Since(start))
	if doc.Truncated() {
		logger.Warn("input ended inside a section header, key or quoted value", "name", doc.Name())
	}
	return doc, nil
}

func printWarnings(cmd *cobra.Command, doc *ini.Document) {
	for _, w := range doc.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), w)
	}
}
