package cmdrunner

import "errors"

// errPipeCreate is the one fatal error this package ever returns: pipe
// creation failure aborts the whole operation rather than being reported as
// a non-fatal false, since without a pipe there is nowhere for the child's
// output to go.
var errPipeCreate = errors.New("cmdrunner: cannot create output pipe")
