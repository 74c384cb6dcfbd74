package index

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jimlawless/whereami"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
)

// Формат артефакта индекса: magic, версия, размерность, количество векторов,
// затем подряд все вектора в little-endian float32.
const (
	indexMagic   = "TFI1"
	codecVersion = uint32(1)
)

// Write сериализует индекс в поток.
func (f *Flat) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(indexMagic); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	header := []uint32{codecVersion, uint32(f.dim), uint32(f.Len())}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, f.data); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return bw.Flush()
}

// Read десериализует индекс из потока.
func Read(r io.Reader) (*Flat, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(indexMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if string(magic) != indexMagic {
		return nil, fmt.Errorf("not an index file: bad magic %q", magic)
	}

	var version, dim, count uint32
	for _, dst := range []*uint32{&version, &dim, &count} {
		if err := binary.Read(br, binary.LittleEndian, dst); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}
	if version != codecVersion {
		return nil, fmt.Errorf("unsupported index version %d", version)
	}

	flat, err := NewFlat(int(dim))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	flat.data = make([]float32, int(dim)*int(count))
	if err := binary.Read(br, binary.LittleEndian, flat.data); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return flat, nil
}

// WriteArtifacts атомарно записывает пару (индекс, метаданные) на диск.
// Пара с несовпадающими длинами никогда не пишется.
func WriteArtifacts(indexPath, metadataPath string, flat *Flat, items []domain.IndexedItem) error {
	if flat.Len() != len(items) {
		return e.Wrap(fmt.Sprintf("index %d, metadata %d", flat.Len(), len(items)), e.ErrIndexMetadataLength)
	}
	if flat.Len() == 0 {
		return e.ErrEmptyIndex
	}

	if err := writeAtomic(indexPath, flat.Write); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	writeMeta := func(w io.Writer) error {
		enc := json.NewEncoder(w)
		return enc.Encode(items)
	}
	if err := writeAtomic(metadataPath, writeMeta); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ReadArtifacts загружает пару (индекс, метаданные) и проверяет её согласованность.
func ReadArtifacts(indexPath, metadataPath string) (*Flat, []domain.IndexedItem, error) {
	idxFile, err := os.Open(indexPath)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer idxFile.Close()

	flat, err := Read(idxFile)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	metaFile, err := os.Open(metadataPath)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer metaFile.Close()

	var items []domain.IndexedItem
	if err := json.NewDecoder(metaFile).Decode(&items); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if flat.Len() != len(items) {
		return nil, nil, e.Wrap(fmt.Sprintf("index %d, metadata %d", flat.Len(), len(items)), e.ErrIndexMetadataLength)
	}

	return flat, items, nil
}

// writeAtomic пишет во временный файл в той же директории и переименовывает.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
