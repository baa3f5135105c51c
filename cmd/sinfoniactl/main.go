package main

import "github.com/ghtyrant/sinfonia-server/internal/cli"

func main() {
	cli.Execute()
}
