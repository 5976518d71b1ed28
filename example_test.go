package pdf2md_test

import (
	"fmt"

	pdf2md "github.com/alnah/go-pdf2md"
)

func ExampleOutline() {
	markdown := "## ACCESS_JSON (1)\n\n### NAME\n\naccess_json - manage JSON access\n"

	for _, h := range pdf2md.Outline(markdown) {
		fmt.Printf("%d %s\n", h.Level, h.Text)
	}
	// Output:
	// 2 ACCESS_JSON (1)
	// 3 NAME
}

func ExampleDefaultRules() {
	rules := pdf2md.DefaultRules()
	fmt.Println(rules.TOCMarker)
	// Output:
	// Table of Contents
}
