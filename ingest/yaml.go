package ingest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes and validates a roster document.
//
//	performers:
//	  - name: Ava
//	    capacity: "1-2"
//	    most: [Tap]
//	segments:
//	  - name: Tap
//	    capacity: "4"
//	    ratings: {5: [Ava]}
//	exclusion_pairs:
//	  - [Tap, Jazz]
func ReadYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("ingest: yaml: %w", err)
	}
	for i, rec := range doc.Performers {
		if err := checkPerformer(i+1, rec); err != nil {
			return nil, err
		}
	}
	for i, rec := range doc.Segments {
		if err := checkSegment(i+1, rec); err != nil {
			return nil, err
		}
	}
	if err := validate.Var(doc.ExclusionPairs, "dive,len=2"); err != nil {
		return nil, fmt.Errorf("%w: exclusion_pairs: %v", ErrInvalidRecord, err)
	}

	return &doc, nil
}

// LoadYAMLFile reads a roster document from path.
func LoadYAMLFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	doc, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
