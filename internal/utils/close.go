package utils

import "io"

// DrainAndClose discards what is left of rc before closing it so the underlying
// keep-alive connection can be reused.
func DrainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	_ = rc.Close()
}
