package ini

import (
	"errors"
	"io"
	"os"
)

// LoadFile reads the file at path into allocator memory and parses it with
// Load. path becomes the document name.
//
// When the file cannot be read LoadFile returns the error together with an
// empty document whose error slot describes the failure, so callers that
// only check HasError see it too.
func LoadFile(path string, opts Options, mem *Memory) (*Document, error) {
	data, err := readFile(path, mem)
	if err != nil {
		failed := opts
		failed.DisableErrors = false
		d := newDocument(failed, path, mem)
		d.sections = []Section{{Name: GlobalSection, Ranges: []Range{{}}}}
		return d, d.fail(KindResource, ErrRead, "%s: %v", path, err)
	}
	return Load(data, opts, path, mem), nil
}

func readFile(path string, mem *Memory) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// bytes appended after Stat are not read
	size := int(info.Size())
	buf := mem.allocate(size)
	n, err := io.ReadFull(f, buf)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		buf = mem.reallocate(buf, n)
	case err != nil:
		mem.release(buf)
		return nil, err
	}
	return buf, nil
}
