// Command flymarket_pinhash prints the bcrypt hash of an operator PIN for OPERATOR_PIN_HASH.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/flymarket_pos/internal/utils"
)

func main() {
	if len(os.Args) != 2 || !utils.ValidPIN(os.Args[1]) {
		fmt.Fprintf(os.Stderr, "usage: flymarket_pinhash <pin>  (%d to %d digits)\n", utils.MinPINLength, utils.MaxPINLength)
		os.Exit(2)
	}

	hash, err := utils.HashPIN(os.Args[1])
	if err != nil {
		slog.Error("Failed to hash PIN", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(hash)
}
