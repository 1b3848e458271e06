package main

import "github.com/dormstern/svcreport/cmd"

func main() {
	cmd.Execute()
}
