package gtpv1u

import "github.com/sirupsen/logrus"

// _lg is package-private ambient debug tracing, matching gtpv1 and gtpv2's
// logging.go: overridable by embedders through SetLogger. No decode or
// encode path in this package writes to it, and it never influences
// control flow.
var _lg = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}
