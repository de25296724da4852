// Package convert drives export of thesis snapshots found on disk and
// exposes export operations for in-memory theses.
package convert

import (
	"archive/zip"
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

	"thesisdoc/archive"
	"thesisdoc/common"
	"thesisdoc/content"
	"thesisdoc/convert/model"
	"thesisdoc/misc"
	"thesisdoc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
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
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	if cmd.Bool("preview") {
		env.Variant = common.VariantPreview
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("variant", env.Variant))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// RunPreview prints block tree of preview document built from a single
// snapshot file.
func RunPreview(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	env.Variant = common.VariantPreview
	log := env.Log.Named("preview")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input snapshot has been specified")
	}

	format, ok, enc, err := isSnapshotFile(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !ok {
		return fmt.Errorf("input was not recognized as thesis snapshot (%s)", src)
	}

	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	c, err := content.Prepare(ctx, selectReader(file, enc), filepath.Base(src), format, log)
	if err != nil {
		return fmt.Errorf("unable to prepare snapshot (%s): %w", src, err)
	}
	art, err := ExportPreview(ctx, c.Thesis, &env.Cfg.Document, log)
	if err != nil {
		return err
	}

	dump := model.Dump(art.Document)
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("preview-%s.txt", c.RefID), []byte(dump))
	}
	_, err = io.WriteString(cmd.Root().Writer, dump)
	return err
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
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

		format, ok, enc, err := isSnapshotFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if ok && len(tail) == 0 {
			// snapshot cannot have tail
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to process file: %w", err)
			}
			defer file.Close()
			if err := processSnapshot(ctx, selectReader(file, enc), filepath.Base(head), dst, format, log); err != nil {
				return fmt.Errorf("unable to process file (%s): %w", head, err)
			}
			break
		}
		return fmt.Errorf("input was not recognized as thesis snapshot (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding snapshots and archives and
// processes them. Failures of individual snapshots are logged and do not stop
// the walk.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
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

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		format, ok, enc, err := isSnapshotFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as snapshot or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processSnapshot(ctx, selectReader(file, enc), src, dst, format, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside archive, finds snapshots under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	cp := state.EnvFromContext(ctx).CodePage

	err = archive.Walk(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		format, ok, enc, err := isSnapshotInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as snapshot", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processSnapshot(ctx, selectReader(r, enc), filepath.Join(pathOut, pathInArchive), dst, format, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processSnapshot exports single snapshot. "src" is part of the source path
// (always including file name) relative to the original path: base file name
// when file was specified directly, relative path when looking inside
// archive or directory. "dst" is the destination directory.
func processSnapshot(ctx context.Context, r io.Reader, src, dst string, format common.SnapshotFormat, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Export starting", zap.String("from", src))
	defer func(start time.Time) {
		// image decoders are third party code, a single bad figure must not
		// stop the whole run
		if r := recover(); r != nil {
			log.Error("Export ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("export panic: %v", r)
		} else if rerr == nil {
			log.Info("Export completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	c, err := content.Prepare(ctx, r, src, format, log)
	if err != nil {
		return fmt.Errorf("unable to prepare snapshot (%s): %w", src, err)
	}
	refID = c.RefID

	outputName = buildOutputPath(c, src, dst, env.Variant, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	art, err := export(ctx, c.Thesis, &env.Cfg.Document, env.Variant, log)
	if err != nil {
		return err
	}

	if c.WorkDir != "" {
		if err := os.WriteFile(filepath.Join(c.WorkDir, filepath.Base(src)+"_blocks"), []byte(model.Dump(art.Document)), 0644); err != nil {
			log.Warn("Unable to write block stream for debugging", zap.Error(err))
		}
	}

	if err := writeArtifact(art.Data, outputName, env.Cfg.Document.FixZip); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store export result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}
	return nil
}

// writeArtifact writes package through temporary file so that partially
// written output never appears under the final name.
func writeArtifact(data []byte, outputPath string, fixZip bool) error {
	f, err := os.CreateTemp("", misc.GetAppName()+"-*.docx")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize temporary file: %w", err)
	}

	if fixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}
