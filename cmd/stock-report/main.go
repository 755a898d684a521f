package main

import "github.com/Davisanity-TW/stock-report/cmd/stock-report/cmd"

func main() {
	cmd.Execute()
}
