// Package convert implements extract subcommand: it walks SVG documents and
// attribute files and writes render ready property records.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"svgprops/archive"
	"svgprops/config"
	"svgprops/css"
	"svgprops/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if env.Format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Output.Format), zap.Error(err))
			env.Format = env.Cfg.Output.Format
		}
	}

	if path := env.Cfg.Document.StylesheetPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read style sheet from %q: %w", path, err)
		}
		env.Stylesheet = css.NewParser(log).Parse(data, path)
		env.Rpt.Store("stylesheet.css", path)
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", append(env.Stats.Fields(), zap.Duration("elapsed", time.Since(start)))...)
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive, or single file)
// and processes accordingly. Path may continue inside of an archive.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		kind := env.Cfg.Document.Input.Classify(head)
		if kind != config.InputUnknown && len(tail) == 0 {
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to open source: %w", err)
			}
			defer file.Close()
			return processFile(ctx, file, kind, filepath.Base(head), dst, log)
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}
		return fmt.Errorf("input was not recognized as SVG document, attribute file or archive (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding sources and archives.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if isProduced(path) {
			log.Debug("Skipping produced records", zap.String("file", path))
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		kind := env.Cfg.Document.Input.Classify(path)
		if kind == config.InputUnknown {
			isArchive, err := isArchiveFile(path)
			if err != nil {
				log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
				return nil
			}
			if !isArchive {
				log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
				return nil
			}
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		if err := processFile(ctx, file, kind, rel, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive walks all files inside archive under "pathIn" and
// processes recognized sources. Results are put under "pathOut".
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	return archive.Walk(path, pathIn, env.CodePage, func(e archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		kind := env.Cfg.Document.Input.Classify(e.Name)
		if kind == config.InputUnknown || isProduced(e.Name) {
			log.Debug("Skipping file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name))
			return nil
		}

		count++

		r, err := e.File.Open()
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processFile(ctx, r, kind, filepath.Join(pathOut, filepath.FromSlash(e.Name)), dst, log); err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
}

// processFile extracts records from single source. "src" is the source path
// relative to the original path: base file name when a file was specified,
// relative path inside of directory or archive otherwise. "dst" is the
// destination directory.
func processFile(ctx context.Context, r io.Reader, kind config.InputKind, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(selectReader(r, kind))
	if err != nil {
		err = fmt.Errorf("unable to read source (%s): %w", src, err)
		env.Stats.Count(0, err)
		return err
	}

	var (
		outputName string
		records    []Record
	)

	log.Info("Extraction starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Extraction ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("from", src), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("extraction panic: %v", r)
		}
		env.Stats.Count(len(records), rerr)
		if rerr != nil {
			env.Rpt.StoreData("failed/"+filepath.ToSlash(src), data)
			return
		}
		log.Info("Extraction completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Int("records", len(records)))
	}(time.Now())

	records, err = readRecords(bytes.NewReader(data), filepath.ToSlash(src), kind, env, log)
	if err != nil {
		return fmt.Errorf("unable to read source (%s): %w", src, err)
	}

	outputName = buildOutputPath(src, dst, kind, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := encodeRecords(&buf, records, env.Format, env.Cfg.Output.Indent); err != nil {
		return err
	}
	if err := os.WriteFile(outputName, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy("result/"+filepath.Base(outputName), outputName); err != nil {
			log.Debug("Unable to store result in report", zap.Error(err))
		}
	}
	return nil
}
