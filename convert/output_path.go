package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/content"
	"thesisdoc/state"
)

// buildOutputPath returns output file path for prepared snapshot. It uses
// either name derived from thesis title or user-defined template and takes
// into account whether to preserve source directory structure on the output.
// Path is cleaned and, if requested, transliterated.
func buildOutputPath(c *content.Content, src, dst string, variant common.Variant, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	defaultFile := buildDefaultFileName(c, src, variant, env)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(c, variant, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return assemblePathWithSubdirs(outDir, expandedName, variant, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

// buildDefaultFileName uses thesis title, source file name when title is
// empty.
func buildDefaultFileName(c *content.Content, src string, variant common.Variant, env *state.LocalEnv) string {
	baseName := strings.TrimSpace(c.Thesis.Title())
	if baseName == "" {
		baseName = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	}
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + getFileExtension(variant)
}

func getFileExtension(variant common.Variant) string {
	switch variant {
	case common.VariantFull:
		return ".docx"
	case common.VariantPreview:
		return ".preview.docx"
	default:
		// this should never happen
		panic("unsupported variant requested")
	}
}

func expandOutputNameTemplate(c *content.Content, variant common.Variant, env *state.LocalEnv) string {
	values := newValues(c.Thesis, variant, c.SrcName, c.RefID)
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, values)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, variant common.Variant, env *state.LocalEnv) string {
	outExt := getFileExtension(variant)
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + outExt
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
