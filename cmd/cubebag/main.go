package main

import "github.com/aalvaropc/cubebag/internal/cli"

func main() {
	cli.Execute()
}
