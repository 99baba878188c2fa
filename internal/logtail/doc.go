// Package logtail reads and parses the tail of clockwall's log file.
//
// # Reading Log Files
//
// Read uses a ring buffer to extract the last maxLines from a file in one
// sequential pass, using O(maxLines) memory regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		return err
//	}
//
// # Parsing
//
// clockwall logs through slog's text handler, so every line is a sequence of
// key=value pairs with optional quoting:
//
//	time=2026-10-17T09:41:00.000Z level=INFO msg="clock added" session=… id=2Xv…
//
// Parse pulls out time, level and msg and keeps the remaining pairs as
// attributes, which the activity view renders after the message. Lines that
// are not key=value records (a panic trace, for instance) are kept verbatim
// as the message.
package logtail
