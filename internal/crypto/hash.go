package crypto

import (
	"crypto/sha1" //nolint:gosec // git object ids are sha1 by definition
	"encoding/hex"
	"fmt"
)

// GitBlobSHA возвращает идентификатор git blob для содержимого файла.
// Совпадает с "sha", который GitHub Contents API возвращает для файла,
// поэтому его можно сравнивать с version token без запроса к API.
func GitBlobSHA(content []byte) string {
	h := sha1.New() //nolint:gosec
	_, _ = fmt.Fprintf(h, "blob %d\x00", len(content))
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
