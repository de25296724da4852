package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"thesisdoc/common"
)

// enough to see BOM and first meaningful character of the snapshot
const sniffLen = 512

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "UTF-8"
	case encUTF16BigEndian:
		return "UTF-16BE"
	case encUTF16LittleEndian:
		return "UTF-16LE"
	case encUTF32BigEndian:
		return "UTF-32BE"
	case encUTF32LittleEndian:
		return "UTF-32LE"
	}
	return "unknown"
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks for byte order mark. UTF-32LE mark starts with UTF-16LE
// one so longer marks are checked first.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 without BOM.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	var e encoding.Encoding
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		e = xunicode.UTF8BOM
	case encUTF16BigEndian:
		e = xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM)
	case encUTF16LittleEndian:
		e = xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM)
	case encUTF32BigEndian:
		e = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	case encUTF32LittleEndian:
		e = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	default:
		// this should never happen
		panic("unexpected source encoding")
	}
	return transform.NewReader(r, e.NewDecoder())
}

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// snapshotFormat derives snapshot format from file name.
func snapshotFormat(name string) (common.SnapshotFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return common.SnapshotFormatJson, true
	case ".yaml", ".yml":
		return common.SnapshotFormatYaml, true
	}
	return 0, false
}

// sniffSnapshot checks that content looks like snapshot of the given format
// and reports its encoding.
func sniffSnapshot(r io.Reader, format common.SnapshotFormat) (bool, srcEncoding, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, encUnknown, err
	}
	buf = buf[:n]
	enc := detectUTF(buf)

	text, _ := io.ReadAll(selectReader(bytes.NewReader(buf), enc))
	// last rune may be cut by sniff length
	for len(text) > 0 && !utf8.Valid(text) {
		text = text[:len(text)-1]
	}
	if len(text) == 0 || bytes.IndexByte(text, 0) >= 0 {
		return false, encUnknown, nil
	}

	trimmed := bytes.TrimLeftFunc(text, unicode.IsSpace)
	if format == common.SnapshotFormatJson && !bytes.HasPrefix(trimmed, []byte("{")) {
		return false, encUnknown, nil
	}
	return len(trimmed) > 0, enc, nil
}

func isSnapshotFile(path string) (common.SnapshotFormat, bool, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false, encUnknown, err
	}
	defer f.Close()

	format, ok := snapshotFormat(path)
	if !ok {
		return 0, false, encUnknown, nil
	}
	ok, enc, err := sniffSnapshot(f, format)
	return format, ok, enc, err
}

func isSnapshotInArchive(file *zip.File) (common.SnapshotFormat, bool, srcEncoding, error) {
	format, ok := snapshotFormat(file.FileHeader.Name)
	if !ok {
		return 0, false, encUnknown, nil
	}
	r, err := file.Open()
	if err != nil {
		return 0, false, encUnknown, err
	}
	defer r.Close()

	ok, enc, err := sniffSnapshot(r, format)
	return format, ok, enc, err
}
