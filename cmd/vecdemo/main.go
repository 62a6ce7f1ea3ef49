/*
CLI printing a few vector expressions
*/
package main

import "geom2/cmd/vecdemo/commands"

func main() {
	commands.Execute()
}
