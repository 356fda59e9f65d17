package spec

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
)

// DiffText renders a character diff between two tree dumps.
func DiffText(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	return dmp.DiffPrettyText(diffs)
}

// PrintDiff logs the difference between two tree dumps at debug level,
// tagged with the mutation that produced it.
func PrintDiff(a, b, method string) {
	if a == b {
		return
	}
	logrus.WithField("method", method).Debugf("[TREE]: %s\n\n", DiffText(a, b))
}
