package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
)

var ErrMalformedSidecar = errors.New("malformed sidecar")

// ReadSidecar decodes dir/info.json into v. A missing file reports found=false
// with no error; unparseable content wraps ErrMalformedSidecar.
func ReadSidecar(dir string, v any) (bool, error) {
	content, err := os.ReadFile(filepath.Join(dir, SidecarName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(content, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformedSidecar, filepath.Join(dir, SidecarName), err)
	}
	return true, nil
}

// isTruthy reports whether a raw JSON value counts as set the way a
// sidecar author writing `if (info._instructions)` would expect: null,
// false, "" and numeric zero are unset, every other value (containers
// included) is set. An absent key is unset.
func isTruthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", `""`:
		return false
	}
	if n, err := strconv.ParseFloat(string(v), 64); err == nil {
		return n != 0
	}
	return true
}
