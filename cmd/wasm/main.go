//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	"github.com/smallyu/go-elligator1174/internal/elligator"
	"github.com/smallyu/go-elligator1174/internal/log"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

var (
	curve   = curves.MustCurve1174()
	encoder api.Encoder
)

func main() {
	c := make(chan struct{})

	encoder = elligator.NewFastEncoder(curve)
	if err := log.Init("info", "stdout"); err != nil {
		fmt.Println("log init:", err)
	}
	log.Infow("Go Elligator1174 WASM initialized", "backend", encoder.Name())

	// Expose Go functions to JS
	js.Global().Set("GoElligator", map[string]interface{}{
		"Encode": js.FuncOf(Encode),
		"Decode": js.FuncOf(Decode),
		"Hide":   js.FuncOf(Hide),
		"Reveal": js.FuncOf(Reveal),
	})

	<-c
}

// Numbers cross the JS boundary as strings: JS numbers lose precision
// above 2^53.
type pointDTO struct {
	X string `json:"x"`
	Y string `json:"y"`
}

func parse(s string) (*big.Int, error) {
	v, err := bigint.FromString(s, 0)
	if err != nil {
		return nil, err
	}
	return v.Big(), nil
}

func hexString(v *big.Int) string {
	return "0x" + v.Text(16)
}

func pointJSON(x, y *big.Int) interface{} {
	b, _ := json.Marshal(pointDTO{X: hexString(x), Y: hexString(y)})
	return string(b)
}

// Encode maps a representative to a point.
// Arguments:
// 0: t as a decimal or 0x-prefixed hex string
// Returns:
// JSON {"x": "...", "y": "..."} or an error string
func Encode(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (t)"
	}
	t, err := parse(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid t: %v", err)
	}
	x, y, err := encoder.StringToPoint(t)
	if err != nil {
		return fmt.Sprintf("error: encode failed: %v", err)
	}
	return pointJSON(x, y)
}

// Decode maps a point to its canonical representative.
// Arguments:
// 0: x, 1: y
// Returns:
// t as a 0x-prefixed hex string or an error string
func Decode(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (x, y)"
	}
	x, err := parse(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid x: %v", err)
	}
	y, err := parse(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid y: %v", err)
	}
	t, err := elligator.PointToStringChecked(curve, curves.NewPoint(bigint.FromBig(x), bigint.FromBig(y)))
	if err != nil {
		return fmt.Sprintf("error: decode failed: %v", err)
	}
	return hexString(t.Big())
}

// Hide encodes a point as 32 random looking bytes.
// Arguments:
// 0: x, 1: y
// Returns:
// hex string of 64 characters or an error string
func Hide(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (x, y)"
	}
	x, err := parse(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid x: %v", err)
	}
	y, err := parse(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid y: %v", err)
	}
	rep, err := elligator.Hide(curve, curves.NewPoint(bigint.FromBig(x), bigint.FromBig(y)), rand.Reader)
	if err != nil {
		return fmt.Sprintf("error: hide failed: %v", err)
	}
	return hex.EncodeToString(rep[:])
}

// Reveal recovers the point from a hidden string.
// Arguments:
// 0: hex string of 64 characters
// Returns:
// JSON {"x": "...", "y": "..."} or an error string
func Reveal(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (hex)"
	}
	raw, err := hex.DecodeString(args[0].String())
	if err != nil || len(raw) != elligator.RepresentativeSize {
		return "error: expected 32 hex-encoded bytes"
	}
	var rep [elligator.RepresentativeSize]byte
	copy(rep[:], raw)

	pt, err := elligator.Reveal(curve, rep)
	if err != nil {
		return fmt.Sprintf("error: reveal failed: %v", err)
	}
	return pointJSON(pt.X.Big(), pt.Y.Big())
}
