package gtpv1

import "github.com/sirupsen/logrus"

// _lg is package-private ambient debug tracing, in the same spirit as the
// teacher's define.go: a package logger defaulting to logrus.New(),
// overridable by embedders through SetLogger. No decode or encode path in
// this package writes to it, and it never influences control flow.
var _lg = logrus.New()

// SetLogger replaces the package logger, e.g. to route trace output into an
// embedding application's own logrus instance.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}
