package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/microdom/dom"
	"github.com/npillmayer/microdom/markup"
	"github.com/spf13/cobra"
)

// loadFile builds a document from a file, streaming the file through the
// tokenizer selected by the --xml flag.
func loadFile(cmd *cobra.Command, path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tok markup.Tokenizer
	if asXML, _ := cmd.Flags().GetBool("xml"); asXML {
		tok = markup.NewXMLTokenizer(f)
	} else {
		tok = markup.NewHTMLTokenizer(f)
	}
	var built *dom.Document
	if _, err = dom.Load(tok, func(d *dom.Document) { built = d }); err != nil {
		return nil, err
	}
	if err = tok.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return built, nil
}
