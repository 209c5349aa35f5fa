package main

import "github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/cli"

func main() {
	cli.Execute()
}
