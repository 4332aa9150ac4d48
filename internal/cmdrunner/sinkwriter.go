package cmdrunner

import "srchash/internal/hashsink"

// sinkWriter adapts a hashsink.Sink to io.Writer, so io.Copy can stream a
// subprocess's output straight into the hash without an intermediate
// buffer.
type sinkWriter struct {
	sink hashsink.Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	w.sink.AbsorbBytes(p)

	return len(p), nil
}
