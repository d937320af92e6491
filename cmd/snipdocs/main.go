package main

import "github.com/mvp-joe/snipdocs/internal/cli"

func main() {
	cli.Execute()
}
