// Package content prepares export input: snapshot is read, parsed into the
// thesis model, normalized and checked for structural soundness.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/misc"
	"thesisdoc/state"
	"thesisdoc/thesis"
)

// Content is a thesis ready to be exported.
type Content struct {
	SrcName string
	Format  common.SnapshotFormat
	// RefID identifies the snapshot, identical snapshots get identical IDs.
	RefID string
	// Thesis is normalized, source order is not kept.
	Thesis  *thesis.Document
	WorkDir string
}

// Prepare reads, parses, and validates thesis snapshot for export.
func Prepare(ctx context.Context, r io.Reader, srcName string, format common.SnapshotFormat, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}

	doc, err := thesis.Parse(bytes.NewReader(data), format, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse snapshot: %w", err)
	}

	c := &Content{
		SrcName: srcName,
		Format:  format,
		RefID:   RefID(data),
		Thesis:  doc.Normalize(),
	}

	if env.Rpt != nil {
		tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-")
		if err != nil {
			return nil, fmt.Errorf("unable to create temporary directory: %w", err)
		}
		env.Rpt.Store(fmt.Sprintf("%s-%s", misc.GetAppName(), c.RefID), tmpDir)
		c.WorkDir = tmpDir

		baseSrcName := filepath.Base(srcName)
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName), data, 0644); err != nil {
			return nil, fmt.Errorf("unable to write input snapshot for debugging: %w", err)
		}
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName+"_outline"), []byte(c.String()), 0644); err != nil {
			return nil, fmt.Errorf("unable to write parsed outline for debugging: %w", err)
		}
	}

	if err := c.Thesis.Validate(env.Variant); err != nil {
		return nil, fmt.Errorf("thesis is structurally invalid: %w", err)
	}

	log.Debug("Snapshot prepared",
		zap.String("ref_id", c.RefID),
		zap.Int("chapters", len(c.Thesis.Chapters)),
		zap.Int("front", len(c.Thesis.FrontMatter)),
		zap.Int("back", len(c.Thesis.BackMatter)))

	return c, nil
}

// RefID derives stable identifier from snapshot bytes.
func RefID(data []byte) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, data).String()
}
