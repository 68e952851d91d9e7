package main

import (
	"github.com/domainforge/domainforge/internal/cmd"
)

func main() {
	cmd.Execute()
}
