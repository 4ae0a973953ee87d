package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootHeader = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childHeader = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"amrscan": {
		title:    "amrscan",
		navOrder: 0,
	},
	"amrscan_compare": {
		title:    "compare",
		navOrder: 0,
		parent:   "amrscan",
	},
	"amrscan_report": {
		title:    "report",
		navOrder: 1,
		parent:   "amrscan",
	},
}

// docsCmd is for generating the Markdown documentation pages. Hidden from
// the command list.
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Generate Markdown documentation for the amrscan commands",
	Run:    makeDocs,
	Hidden: true,
}

// set flags
func init() {
	rootCmd.AddCommand(docsCmd)
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs(cmd *cobra.Command, args []string) {
	dir := "./docs"
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootHeader, m.title, m.navOrder)
	}

	return fmt.Sprintf(childHeader, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "amrscan" {
		return "/"
	}

	return base
}
