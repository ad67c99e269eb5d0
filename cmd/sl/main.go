package main

import "studioline/cmd/sl/root"

func main() {
	root.Execute()
}
