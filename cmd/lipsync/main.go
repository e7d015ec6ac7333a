package main

import "github.com/gracie007-cloud/automatic-lip-syncing/internal/cli"

func main() {
	cli.Execute()
}
