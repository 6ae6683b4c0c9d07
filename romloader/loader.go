// This file is part of Emulate6502.
//
// Emulate6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emulate6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emulate6502.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
)

// Sentinal error patterns.
const (
	NoData       = "romloader: no data"
	FileError    = "romloader: %v"
	HashMismatch = "romloader: unexpected hash value"
)

// Loader is used to specify the ROM to load and the address it should be
// loaded to.
type Loader struct {
	// filename of the ROM. can be a local file or a HTTP URL
	Filename string

	// address of the first byte of data in the emulated address space
	Origin uint16

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint16) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(FileError, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	case "file", "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(FileError, err)
		}

	default:
		return curated.Errorf(FileError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf(NoData)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(HashMismatch)
	}

	ld.Hash = hash

	return nil
}

// Attach the loaded data to memory at the Origin address. Returns the
// NoData error if Load() has not been called successfully.
func (ld Loader) Attach(mem bus.Memory) error {
	_, err := LoadBytes(mem, ld.Origin, ld.Data)
	return err
}

// LoadBytes writes data to memory starting at the origin address. The write
// address is clamped at 0xffff so data that runs past the end of memory is
// written to 0xffff, with the last byte of data remaining there. Returns the
// number of bytes written, which is always the length of data.
//
// Returns the NoData error if there is nothing to copy.
func LoadBytes(mem bus.Memory, origin uint16, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, curated.Errorf(NoData)
	}

	address := origin
	for _, b := range data {
		mem.Write(address, b)
		if address != 0xffff {
			address++
		}
	}

	return len(data), nil
}

// LoadFile is a convenience function that loads the named file and writes it
// to memory starting at the origin address.
func LoadFile(mem bus.Memory, origin uint16, filename string) error {
	ld := NewLoader(filename, origin)
	err := ld.Load()
	if err != nil {
		return err
	}
	return ld.Attach(mem)
}
