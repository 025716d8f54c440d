package main

import "github.com/Manu343726/isagen/cmd"

func main() {
	cmd.Execute()
}
