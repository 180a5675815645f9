package main

import "github.com/RiveriRiv/payments-aggregator/cmd"

func main() {
	cmd.Execute()
}
