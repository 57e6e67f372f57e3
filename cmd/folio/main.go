package main

import "github.com/just-nibble/folio-service/internal/cli"

func main() {
	cli.Execute()
}
