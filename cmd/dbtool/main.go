// dbtool prepara la base de datos del dashboard: aplica el esquema y carga los datos de demo.
//
// Uso:
//
//	go run ./cmd/dbtool migrate
//	go run ./cmd/dbtool seed [--file fixtures.yaml]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
