package ttlv

import "github.com/op/go-logging"

// log is this package's logger. It is used only at decode error
// boundaries, to give an operator a breadcrumb trail for malformed wire
// data; it is never a substitute for returning the error to the caller.
var log = logging.MustGetLogger("ttlv")
