//go:build der_debug

package der

/*
trc_on.go implements this package's diagnostic tracer, compiled in only
under the der_debug build tag.
*/

import (
	"fmt"
	"os"
)

func trace(event string, args ...any) {
	fmt.Fprintf(os.Stderr, "der: %s %v\n", event, args)
}
