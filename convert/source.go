package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"svgprops/attrs"
	"svgprops/config"
	"svgprops/extract"
	"svgprops/state"
	"svgprops/svgdoc"
)

// readRecords extracts properties of every node found in a single source.
func readRecords(r io.Reader, src string, kind config.InputKind, env *state.LocalEnv, log *zap.Logger) ([]Record, error) {
	e := extract.New(log)
	props := func(b attrs.Bag) *extract.Props {
		if env.Cfg.Document.MergeStyles {
			return e.ExtractStyled(b, nil)
		}
		return e.Extract(b, nil)
	}

	switch kind {
	case config.InputSVG:
		doc, err := svgdoc.Read(r, log, svgdoc.WithStylesheet(env.Stylesheet))
		if err != nil {
			return nil, err
		}
		if env.Rpt != nil {
			env.Rpt.StoreData("tree/"+src+".txt", []byte(doc.Dump()))
		}
		nodes := doc.Nodes()
		records := make([]Record, 0, len(nodes))
		for _, n := range nodes {
			rec := Record{Source: src, Path: n.Path, Tag: n.Tag, Props: props(n.Attrs)}
			if env.Cfg.Output.Geometry && len(n.Geometry) > 0 {
				rec.Geometry = n.Geometry
			}
			records = append(records, rec)
		}
		return records, nil

	case config.InputJSON, config.InputYAML:
		docs, err := decodeDocuments(r, kind)
		if err != nil {
			return nil, err
		}
		var records []Record
		for i, doc := range docs {
			bags, skipped := attrs.List(doc)
			if len(skipped) > 0 {
				log.Warn("Entries are not attribute mappings, skipping", zap.String("source", src), zap.Int("document", i), zap.Ints("entries", skipped))
			}
			for j, b := range bags {
				records = append(records, Record{Source: src, Path: recordPath(len(docs), i, j), Props: props(b)})
			}
		}
		return records, nil
	}
	return nil, fmt.Errorf("unsupported source %s", src)
}

// decodeDocuments reads stream of JSON values or YAML documents.
func decodeDocuments(r io.Reader, kind config.InputKind) ([]any, error) {
	type decoder interface{ Decode(v any) error }

	var dec decoder
	if kind == config.InputJSON {
		dec = json.NewDecoder(r)
	} else {
		dec = yaml.NewDecoder(r)
	}

	var docs []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("unable to decode document %d: %w", len(docs), err)
		}
		if v != nil {
			docs = append(docs, v)
		}
	}
	return docs, nil
}

func recordPath(docs, doc, entry int) string {
	if docs == 1 {
		return fmt.Sprintf("[%d]", entry)
	}
	return fmt.Sprintf("%d[%d]", doc, entry)
}
