// Command elligator1174 encodes Curve1174 points as uniform looking
// strings and back.
package main

import (
	"os"

	"github.com/smallyu/go-elligator1174/internal/log"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorw(err, "elligator1174 failed")
		os.Exit(1)
	}
}
