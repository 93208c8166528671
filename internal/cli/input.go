package cli

import (
	"io"
	"os"
)

// ReadInput loads the whole HPGL file into memory.
// The size reported by stat must match the bytes actually read.
func ReadInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, exitf(ExitUsage, "cannot stat '%s': %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, exitf(ExitInput, "cannot open input file '%s' for reading: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, exitf(ExitInput, "cannot read input file '%s': %w", path, err)
	}

	if int64(len(data)) != info.Size() {
		return nil, exitf(ExitShort, "the file size (%d bytes) and the size of the data read (%d bytes) do not match", info.Size(), len(data))
	}
	return data, nil
}
