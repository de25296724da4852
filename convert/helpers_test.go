package convert

import (
	"bytes"
	"context"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"thesisdoc/common"
	"thesisdoc/config"
	"thesisdoc/state"
	"thesisdoc/thesis"
)

const sampleSnapshotPath = "../thesis/testdata/sample.json"

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

// setupTestEnv creates environment with default configuration and test
// logger.
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = testLogger(t)
	env.Cfg = cfg
	return ctx, env
}

func loadSample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(sampleSnapshotPath)
	if err != nil {
		t.Fatalf("read sample snapshot: %v", err)
	}
	return data
}

func parseSample(t *testing.T) *thesis.Document {
	t.Helper()
	doc, err := thesis.Parse(bytes.NewReader(loadSample(t)), common.SnapshotFormatJson, testLogger(t))
	if err != nil {
		t.Fatalf("parse sample snapshot: %v", err)
	}
	return doc
}

func encodeFor(t *testing.T, data []byte, enc srcEncoding) []byte {
	t.Helper()
	switch enc {
	case encUnknown:
		return data
	case encUTF8:
		return append([]byte{0xEF, 0xBB, 0xBF}, data...)
	case encUTF16BigEndian:
		return encodeWithTransformer(t, data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder())
	case encUTF16LittleEndian:
		return encodeWithTransformer(t, data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
	case encUTF32BigEndian:
		return encodeWithTransformer(t, data, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder())
	case encUTF32LittleEndian:
		return encodeWithTransformer(t, data, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder())
	}
	t.Fatalf("unsupported encoding: %v", enc)
	return nil
}

func encodeWithTransformer(t *testing.T, data []byte, encoder transform.Transformer) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoder)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize encoded sample: %v", err)
	}
	return buf.Bytes()
}
