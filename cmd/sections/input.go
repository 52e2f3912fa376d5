package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/sections/model"
)

// document is the JSON input: the regions and columns of every page
type document struct {
	Regions []model.Region `json:"regions"`
	Columns []model.Column `json:"columns"`
}

func readDocument(path string, stdin io.Reader) (*document, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &doc, nil
}
